package assemble

import (
	"fmt"

	"github.com/promptloom/promptloom/internal/core/picker"
	"github.com/promptloom/promptloom/internal/core/promptfile"
	"github.com/promptloom/promptloom/internal/core/tagstore"
	apperrors "github.com/promptloom/promptloom/internal/errors"
)

// BatchRequest is the assembly context for a run of prompts sharing one
// seeded stream. Sequential mode walks start_index+i with modulo wrap;
// random mode draws each index independently from the stream.
type BatchRequest struct {
	PromptDir        string `json:"-"`
	PromptFile       string `json:"prompt_file"`
	StartIndex       int    `json:"start_index"`
	BatchSize        int    `json:"batch_size"`
	Mode             Mode   `json:"mode"`
	Preset           string `json:"preset"`
	RandomAction     bool   `json:"random_action"`
	RandomBackground bool   `json:"random_background"`
	RandomCamera     bool   `json:"random_camera"`
	CustomPositive   string `json:"custom_positive"`
	CustomNegative   string `json:"custom_negative"`
	Seed             uint64 `json:"seed"`
}

// Batch assembles BatchSize prompts, one per record step.
func Batch(req BatchRequest) Result {
	entries, err := promptfile.Parse(promptfile.Path(req.PromptDir, req.PromptFile))
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeFileNotFound {
			return failure(fmt.Sprintf("Error: %s not found", req.PromptFile), err)
		}
		return failure(fmt.Sprintf("Error: %v", err), err)
	}
	if len(entries) == 0 {
		return failure("Error: No prompts found",
			apperrors.NewEmptyInputError("no prompts in "+req.PromptFile))
	}

	total := len(entries)
	size := req.BatchSize
	if size < 1 {
		size = 1
	}

	rng := picker.New(req.Seed)
	preset := tagstore.LookupPreset(req.Preset)
	cleanPreset := stripLeadingComma(preset.Positive)

	prompts := make([]string, 0, size)
	names := make([]string, 0, size)

	for i := 0; i < size; i++ {
		idx := resolveIndex(req.Mode, req.StartIndex+i, total, rng)
		entry := entries[idx]

		var p pipeline
		p.addStatic("quality", cleanPreset)
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

		prompts = append(prompts, p.join())
		names = append(names, entry.CharacterName)
	}

	return Result{
		Prompts:        prompts,
		Negative:       combineNegative(preset.Negative, req.CustomNegative),
		CharacterNames: names,
		Index:          ((req.StartIndex % total) + total) % total,
		Total:          total,
	}
}
