package assemble

import (
	"strings"

	"github.com/promptloom/promptloom/internal/core/cleaner"
	"github.com/promptloom/promptloom/internal/core/picker"
	"github.com/promptloom/promptloom/internal/core/promptfile"
	"github.com/promptloom/promptloom/internal/core/tagstore"
	apperrors "github.com/promptloom/promptloom/internal/errors"
)

// TargetModel selects the prompt dialect of the RedNote assembler.
type TargetModel string

const (
	// TargetTags emits comma-joined booru tags (Illustrious-class models).
	TargetTags TargetModel = "tags"
	// TargetNatural emits full sentences (Flux/Qwen-class models).
	TargetNatural TargetModel = "natural"
)

// RedNotePreset layers the quality block plus the RedNote style/character
// enforcers instead of a regular preset.
const RedNotePreset = "RedNote"

// safetyTriggers are action substrings that expose leg positions and force
// the safety-shorts tag. Matching is a plain case-sensitive substring test;
// the keyword set is intentionally literal (see NeedsSafetyShorts).
var safetyTriggers = []string{"sitting", "hugging", "lying"}

// NeedsSafetyShorts reports whether the action phrase requires the
// safety-shorts tag. The check is case-sensitive and matches anywhere in
// the string, so e.g. "lying down" and "lying on grass" both trigger.
func NeedsSafetyShorts(action string) bool {
	for _, keyword := range safetyTriggers {
		if strings.Contains(action, keyword) {
			return true
		}
	}
	return false
}

// RedNoteRequest is the assembly context for the platform-safe variant.
type RedNoteRequest struct {
	PromptDir        string      `json:"-"`
	PromptFile       string      `json:"prompt_file"`
	StyleFile        string      `json:"style_file"`
	TargetModel      TargetModel `json:"target_model"`
	StartIndex       int         `json:"start_index"`
	BatchSize        int         `json:"batch_size"`
	Preset           string      `json:"preset"`
	Mode             Mode        `json:"mode"`
	MoodLevel        float64     `json:"mood_level"`
	StyleLock        bool        `json:"enable_style_lock"`
	RandomAction     bool        `json:"random_action"`
	RandomBackground bool        `json:"random_background"`
	RandomCamera     bool        `json:"random_camera"`
	CustomPositive   string      `json:"custom_positive"`
	CustomNegative   string      `json:"custom_negative"`
	Seed             uint64      `json:"seed"`
}

// RedNote assembles a batch of platform-safe prompts. The style file is
// optional in effect: an unparseable pair of files is a failure, but an
// empty style list simply drops the style layer.
func RedNote(req RedNoteRequest) Result {
	chars, err := promptfile.Parse(promptfile.Path(req.PromptDir, req.PromptFile))
	if err != nil {
		r := failure("Error loading files", err)
		r.CharacterNames = []string{"Error"}
		r.MoodTags = []string{"Error"}
		return r
	}
	styles, err := promptfile.Parse(promptfile.Path(req.PromptDir, req.StyleFile))
	if err != nil {
		r := failure("Error loading files", err)
		r.CharacterNames = []string{"Error"}
		r.MoodTags = []string{"Error"}
		return r
	}

	if len(chars) == 0 {
		r := failure("Error: No prompts", apperrors.NewEmptyInputError("no prompts in "+req.PromptFile))
		r.CharacterNames = []string{"Error"}
		r.MoodTags = []string{"Error"}
		return r
	}

	totalChars := len(chars)
	totalStyles := len(styles)

	size := req.BatchSize
	if size < 1 {
		size = 1
	}

	rng := picker.New(req.Seed)
	natural := req.TargetModel == TargetNatural
	moodTags := tagstore.MoodPhrase(req.MoodLevel)

	prompts := make([]string, 0, size)
	names := make([]string, 0, size)
	moods := make([]string, 0, size)

	for i := 0; i < size; i++ {
		current := req.StartIndex + i

		charIdx := resolveIndex(req.Mode, current, totalChars, rng)
		entry := chars[charIdx]

		styleTag := ""
		if totalStyles > 0 {
			var styleIdx int
			if req.StyleLock {
				styleIdx = ((current % totalStyles) + totalStyles) % totalStyles
			} else {
				styleIdx = rng.IntN(totalStyles)
			}
			styleTag = cleanFragment(styles[styleIdx].Tags)
		}

		if natural {
			prompts = append(prompts, redNoteNatural(req, entry, styleTag, moodTags, rng))
		} else {
			prompts = append(prompts, redNoteTags(req, entry, styleTag, moodTags, rng))
		}
		names = append(names, entry.CharacterName)
		moods = append(moods, moodTags)
	}

	return Result{
		Prompts:        prompts,
		Negative:       redNoteNegative(req, natural),
		CharacterNames: names,
		MoodTags:       moods,
		Total:          totalChars,
	}
}

// redNoteTags builds the tag-soup dialect.
func redNoteTags(req RedNoteRequest, entry promptfile.Entry, styleTag, moodTags string, rng *picker.Picker) string {
	var p pipeline

	if req.Preset == RedNotePreset {
		p.addStatic("quality", tagstore.QualityTags)
		p.addStatic("rednote-style", stripLeadingComma(tagstore.RedNoteStyle))
	} else {
		preset := tagstore.LookupPreset(req.Preset)
		p.addStatic("quality", preset.Positive)
	}

	p.addStatic("style", styleTag)
	p.addStatic("character", entry.Tags)

	if req.RandomAction {
		action := rng.Pick(tagstore.Actions())
		p.addStatic("action", action)
		if NeedsSafetyShorts(action) {
			p.addStatic("safety-shorts", tagstore.RedNoteSafetyShorts)
		}
	}
	if req.RandomBackground {
		p.add("background", func() string { return rng.Pick(tagstore.Backgrounds()) })
	}
	if req.RandomCamera {
		p.add("camera", func() string { return rng.Pick(tagstore.CameraEffects()) })
	}

	p.addStatic("mood", moodTags)

	if req.Preset == RedNotePreset {
		p.addStatic("rednote-character", stripLeadingComma(tagstore.RedNoteCharacter))
	}
	p.addStatic("custom", req.CustomPositive)

	return p.join()
}

// redNoteNatural builds the sentence dialect: every fragment goes through
// the cleaner and gets a fixed connector phrase.
func redNoteNatural(req RedNoteRequest, entry promptfile.Entry, styleTag, moodTags string, rng *picker.Picker) string {
	var b strings.Builder

	b.WriteString(tagstore.NaturalPrefix)
	b.WriteString(" ")
	b.WriteString(cleaner.Clean(entry.CharacterName))
	b.WriteString(", a girl with ")
	b.WriteString(cleaner.Clean(entry.Tags))
	b.WriteString(".")

	if req.RandomAction {
		writeSentence(&b, tagstore.NaturalConnector("action"), cleaner.Clean(rng.Pick(tagstore.Actions())))
	}
	if req.RandomBackground {
		writeSentence(&b, tagstore.NaturalConnector("background"), cleaner.Clean(rng.Pick(tagstore.Backgrounds())))
	}
	if moodTags != "" {
		writeSentence(&b, tagstore.NaturalConnector("mood"), cleaner.Clean(moodTags))
	}
	if styleTag != "" || req.RandomCamera {
		cam := ""
		if req.RandomCamera {
			cam = rng.Pick(tagstore.CameraEffects())
		}
		if cleanStyle := cleaner.Clean(styleTag); cleanStyle != "" {
			writeSentence(&b, tagstore.NaturalStylePrefix, cleanStyle)
		}
		if cleanCam := cleaner.Clean(cam); cleanCam != "" {
			b.WriteString(" ")
			b.WriteString(cleanCam)
			b.WriteString(".")
		}
	}
	if req.CustomPositive != "" {
		if custom := cleaner.Clean(req.CustomPositive); custom != "" {
			b.WriteString(" ")
			b.WriteString(custom)
			b.WriteString(".")
		}
	}

	return b.String()
}

func writeSentence(b *strings.Builder, connector, fragment string) {
	b.WriteString(" ")
	b.WriteString(connector)
	b.WriteString(" ")
	b.WriteString(fragment)
	b.WriteString(".")
}

// redNoteNegative builds the paired negative. The natural dialect always
// returns empty: the target models perform best with no negative
// conditioning.
func redNoteNegative(req RedNoteRequest, natural bool) string {
	if natural {
		return ""
	}

	parts := make([]string, 0, 3)
	if req.Preset == RedNotePreset {
		parts = append(parts, tagstore.RedNoteNegBase, tagstore.RedNoteNegSafety)
	} else if neg := tagstore.LookupPreset(req.Preset).Negative; neg != "" {
		parts = append(parts, neg)
	} else {
		parts = append(parts, tagstore.RedNoteNegBase)
	}

	if custom := strings.TrimSpace(req.CustomNegative); custom != "" {
		parts = append(parts, custom)
	}

	return strings.Join(parts, ", ")
}
