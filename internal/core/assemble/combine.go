package assemble

import (
	"fmt"

	"github.com/promptloom/promptloom/internal/core/picker"
	"github.com/promptloom/promptloom/internal/core/promptfile"
	"github.com/promptloom/promptloom/internal/core/tagstore"
	apperrors "github.com/promptloom/promptloom/internal/errors"
)

// CombineRequest crosses characters from one file with styles from another.
// Formula: quality preset + style + character + action + background + camera
// + custom, characters in the outer loop (style varies fastest). Both
// indices wrap via modulo over their file lengths.
type CombineRequest struct {
	PromptDir        string `json:"-"`
	CharacterFile    string `json:"character_file"`
	StyleFile        string `json:"style_file"`
	CharStartIndex   int    `json:"char_start_index"`
	StyleStartIndex  int    `json:"style_start_index"`
	CharCount        int    `json:"char_count"`
	StyleCount       int    `json:"style_count"`
	Preset           string `json:"preset"`
	RandomAction     bool   `json:"random_action"`
	RandomBackground bool   `json:"random_background"`
	RandomCamera     bool   `json:"random_camera"`
	CustomPositive   string `json:"custom_positive"`
	CustomNegative   string `json:"custom_negative"`
	Seed             uint64 `json:"seed"`
}

// Combine produces CharCount x StyleCount prompts, capped at
// MaxCombinedPrompts to prevent accidental massive batches.
func Combine(req CombineRequest) Result {
	characters, err := promptfile.Parse(promptfile.Path(req.PromptDir, req.CharacterFile))
	if err != nil {
		return failure(fmt.Sprintf("Error loading characters: %v", err), err)
	}
	styles, err := promptfile.Parse(promptfile.Path(req.PromptDir, req.StyleFile))
	if err != nil {
		return failure(fmt.Sprintf("Error loading styles: %v", err), err)
	}

	if len(characters) == 0 {
		return failure("Error: No characters found",
			apperrors.NewEmptyInputError("no characters in "+req.CharacterFile))
	}
	if len(styles) == 0 {
		return failure("Error: No styles found",
			apperrors.NewEmptyInputError("no styles in "+req.StyleFile))
	}

	charCount := req.CharCount
	if charCount < 1 {
		charCount = 1
	}
	styleCount := req.StyleCount
	if styleCount < 1 {
		styleCount = 1
	}

	if total := charCount * styleCount; total > MaxCombinedPrompts {
		return failure(
			fmt.Sprintf("Error: Total prompts (%d) exceeds max (%d)", total, MaxCombinedPrompts),
			apperrors.NewLimitExceededError(fmt.Sprintf("combiner cross product %d over cap %d", total, MaxCombinedPrompts)),
		)
	}

	rng := picker.New(req.Seed)
	preset := tagstore.LookupPreset(req.Preset)
	cleanPreset := stripLeadingComma(preset.Positive)

	prompts := make([]string, 0, charCount*styleCount)
	names := make([]string, 0, charCount*styleCount)

	for charOffset := 0; charOffset < charCount; charOffset++ {
		char := characters[(req.CharStartIndex+charOffset)%len(characters)]

		for styleOffset := 0; styleOffset < styleCount; styleOffset++ {
			style := styles[(req.StyleStartIndex+styleOffset)%len(styles)]

			var p pipeline
			p.addStatic("quality", cleanPreset)
			p.addStatic("style", style.Tags)
			p.addStatic("character", char.Tags)
			if req.RandomAction {
				p.add("action", func() string { return rng.Pick(tagstore.Actions()) })
			}
			if req.RandomBackground {
				p.add("background", func() string { return rng.Pick(tagstore.Backgrounds()) })
			}
			if req.RandomCamera {
				p.add("camera", func() string { return rng.Pick(tagstore.CameraEffects()) })
			}
			p.add("custom", func() string { return stripLeadingComma(req.CustomPositive) })

			prompts = append(prompts, p.join())
			names = append(names, char.CharacterName)
		}
	}

	return Result{
		Prompts:        prompts,
		Negative:       combineNegative(preset.Negative, req.CustomNegative),
		CharacterNames: names,
		Total:          len(prompts),
	}
}
