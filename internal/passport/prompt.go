package passport

import "strings"

// DefaultPrompt is tuned for instruction-following edit models: describe
// the target photo, not the source.
const DefaultPrompt = "Make a professional USA passport photo: pure white background, " +
	"center the face and shoulders perfectly, neutral expression with " +
	"both eyes open and mouth closed, even studio lighting with no shadows, " +
	"high resolution, formal portrait style, head occupies 50-69% of image height"

// Prompt resolves the edit prompt. A non-empty custom prompt replaces the
// default when useDefault is off; appendTags extends the default otherwise.
// The negative is always empty: edit models perform best without one.
func Prompt(useDefault bool, custom, appendTags string) (prompt, negative string) {
	custom = strings.TrimSpace(custom)
	appendTags = strings.TrimSpace(appendTags)

	if !useDefault && custom != "" {
		return custom, ""
	}
	prompt = DefaultPrompt
	if appendTags != "" {
		prompt += ", " + appendTags
	}
	return prompt, ""
}
