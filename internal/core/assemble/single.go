package assemble

import (
	"fmt"

	"github.com/promptloom/promptloom/internal/core/picker"
	"github.com/promptloom/promptloom/internal/core/promptfile"
	"github.com/promptloom/promptloom/internal/core/tagstore"
	apperrors "github.com/promptloom/promptloom/internal/errors"
)

// SingleRequest is the assembly context for one prompt.
// Formula: quality preset + character + action + background + camera + custom.
type SingleRequest struct {
	PromptDir        string  `json:"-"`
	PromptFile       string  `json:"prompt_file"`
	Index            int     `json:"index"`
	Mode             Mode    `json:"mode"`
	Preset           string  `json:"preset"`
	RandomAction     bool    `json:"random_action"`
	RandomBackground bool    `json:"random_background"`
	RandomCamera     bool    `json:"random_camera"`
	CustomPositive   string  `json:"custom_positive"`
	CustomNegative   string  `json:"custom_negative"`
	Seed             uint64  `json:"seed"`
}

// Single assembles one prompt from the selected record.
func Single(req SingleRequest) Result {
	entries, err := promptfile.Parse(promptfile.Path(req.PromptDir, req.PromptFile))
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeFileNotFound {
			return failure(fmt.Sprintf("Error: %s not found", req.PromptFile), err)
		}
		return failure(fmt.Sprintf("Error: %v", err), err)
	}
	if len(entries) == 0 {
		return failure("Error: No prompts found in file",
			apperrors.NewEmptyInputError("no prompts in "+req.PromptFile))
	}

	total := len(entries)

	// One seeded stream per invocation; draw order is fixed (index, action,
	// background, camera) so a seed reproduces the whole prompt.
	rng := picker.New(req.Seed)

	selected := resolveIndex(req.Mode, req.Index, total, rng)
	entry := entries[selected]

	preset := tagstore.LookupPreset(req.Preset)

	var p pipeline
	p.add("quality", func() string { return stripLeadingComma(preset.Positive) })
	p.addStatic("character", entry.Tags)
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

	return Result{
		Prompts:        []string{p.join()},
		Negative:       combineNegative(preset.Negative, req.CustomNegative),
		CharacterNames: []string{entry.CharacterName},
		Index:          selected,
		Total:          total,
	}
}
