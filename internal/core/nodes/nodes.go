// Package nodes declares the host-graph registration contract: every node's
// input fields (with choices, ranges and defaults) and output fields. Field
// names and types are load-bearing, saved workflows reference them.
package nodes

import (
	"github.com/promptloom/promptloom/internal/core/assemble"
	"github.com/promptloom/promptloom/internal/core/tagstore"
	"github.com/promptloom/promptloom/internal/passport"
)

// Field describes one declared node input.
type Field struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Choices   []string `json:"choices,omitempty"`
	Default   any      `json:"default,omitempty"`
	Min       any      `json:"min,omitempty"`
	Max       any      `json:"max,omitempty"`
	Step      any      `json:"step,omitempty"`
	Multiline bool     `json:"multiline,omitempty"`
	Optional  bool     `json:"optional,omitempty"`
}

// Output describes one declared node output. List outputs fan out one
// value per generated prompt.
type Output struct {
	Name string `json:"name"`
	Type string `json:"type"`
	List bool   `json:"is_list,omitempty"`
}

// Node is one registered node descriptor.
type Node struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Category    string   `json:"category"`
	Inputs      []Field  `json:"inputs"`
	Outputs     []Output `json:"outputs"`
}

const maxSeed = uint64(1<<64 - 1)

func enumField(name string, choices []string, def string) Field {
	return Field{Name: name, Type: "ENUM", Choices: choices, Default: def}
}

func intField(name string, def, minV, maxV int) Field {
	return Field{Name: name, Type: "INT", Default: def, Min: minV, Max: maxV, Step: 1}
}

func boolField(name string, def bool) Field {
	return Field{Name: name, Type: "BOOLEAN", Default: def}
}

func textField(name string) Field {
	return Field{Name: name, Type: "STRING", Default: "", Multiline: true, Optional: true}
}

func seedField() Field {
	return Field{Name: "seed", Type: "INT", Default: 0, Min: 0, Max: maxSeed, Optional: true}
}

func fileField(name string, files []string, def string) Field {
	if def == "" && len(files) > 0 {
		def = files[0]
	}
	return enumField(name, files, def)
}

// styleDefault prefers the conventional style list when present.
func styleDefault(files []string) string {
	for _, f := range files {
		if f == "style_names_v1.txt" {
			return f
		}
	}
	if len(files) > 0 {
		return files[0]
	}
	return ""
}

var modeChoices = []string{string(assemble.ModeSequential), string(assemble.ModeRandom)}

// Registry returns the node descriptors. The prompt-file enumerations are
// built from the given file list so hosts see the live library.
func Registry(promptFiles []string) []Node {
	presets := tagstore.PresetNames()
	rednotePresets := append([]string{assemble.RedNotePreset}, presets...)

	cropModes := make([]string, 0, 3)
	for _, m := range passport.CropModes() {
		cropModes = append(cropModes, string(m))
	}

	return []Node{
		{
			Name:        "AutoPromptLoader",
			DisplayName: "Auto Prompt Loader",
			Category:    "prompt/anime",
			Inputs: []Field{
				fileField("prompt_file", promptFiles, ""),
				intField("index", 0, 0, 99999),
				enumField("mode", modeChoices, string(assemble.ModeSequential)),
				enumField("preset", presets, "standard"),
				boolField("random_action", true),
				boolField("random_background", true),
				boolField("random_camera", true),
				textField("custom_positive"),
				textField("custom_negative"),
				seedField(),
			},
			Outputs: []Output{
				{Name: "prompt", Type: "STRING"},
				{Name: "negative", Type: "STRING"},
				{Name: "character_name", Type: "STRING"},
				{Name: "current_index", Type: "INT"},
				{Name: "total_prompts", Type: "INT"},
			},
		},
		{
			Name:        "AutoPromptBatch",
			DisplayName: "Auto Prompt Batch",
			Category:    "prompt/anime",
			Inputs: []Field{
				fileField("prompt_file", promptFiles, ""),
				intField("start_index", 0, 0, 99999),
				intField("batch_size", 4, 1, 1000),
				enumField("preset", presets, "standard"),
				boolField("random_action", true),
				boolField("random_background", true),
				boolField("random_camera", true),
				textField("custom_positive"),
				textField("custom_negative"),
				seedField(),
			},
			Outputs: []Output{
				{Name: "prompts", Type: "STRING", List: true},
				{Name: "negative", Type: "STRING"},
			},
		},
		{
			Name:        "AutoPromptCombiner",
			DisplayName: "Auto Prompt Combiner",
			Category:    "prompt/anime",
			Inputs: []Field{
				fileField("character_file", promptFiles, ""),
				fileField("style_file", promptFiles, styleDefault(promptFiles)),
				intField("char_start_index", 0, 0, 99999),
				intField("style_start_index", 0, 0, 99999),
				intField("char_count", 1, 1, assemble.MaxCombinedPrompts),
				intField("style_count", 1, 1, assemble.MaxCombinedPrompts),
				enumField("preset", presets, "dynamic"),
				boolField("random_action", true),
				boolField("random_background", true),
				boolField("random_camera", true),
				textField("custom_positive"),
				textField("custom_negative"),
				seedField(),
			},
			Outputs: []Output{
				{Name: "prompts", Type: "STRING", List: true},
				{Name: "negative", Type: "STRING"},
			},
		},
		{
			Name:        "AutoPromptRedNote",
			DisplayName: "Auto Prompt RedNote",
			Category:    "prompt/anime",
			Inputs: []Field{
				fileField("prompt_file", promptFiles, ""),
				fileField("style_file", promptFiles, styleDefault(promptFiles)),
				enumField("target_model", []string{string(assemble.TargetTags), string(assemble.TargetNatural)}, string(assemble.TargetTags)),
				intField("start_index", 0, 0, 99999),
				intField("batch_size", 1, 1, 1000),
				enumField("preset", rednotePresets, assemble.RedNotePreset),
				enumField("mode", modeChoices, string(assemble.ModeSequential)),
				{Name: "mood_level", Type: "FLOAT", Default: 0.5, Min: 0.0, Max: 1.0, Step: 0.1},
				boolField("enable_style_lock", false),
				boolField("random_action", true),
				boolField("random_background", true),
				boolField("random_camera", true),
				textField("custom_positive"),
				textField("custom_negative"),
				seedField(),
			},
			Outputs: []Output{
				{Name: "prompt", Type: "STRING", List: true},
				{Name: "negative", Type: "STRING"},
				{Name: "character_name", Type: "STRING", List: true},
				{Name: "mood_tags", Type: "STRING", List: true},
			},
		},
		{
			Name:        "SuffixEditor",
			DisplayName: "Suffix Editor",
			Category:    "prompt/anime",
			Inputs: []Field{
				enumField("preset", presets, "standard"),
				boolField("use_custom", false),
				textField("custom_suffix"),
				textField("custom_negative"),
			},
			Outputs: []Output{
				{Name: "suffix", Type: "STRING"},
				{Name: "negative", Type: "STRING"},
			},
		},
		{
			Name:        "PassportPrompt",
			DisplayName: "Passport Prompt",
			Category:    "prompt/passport",
			Inputs: []Field{
				boolField("use_default_prompt", true),
				textField("custom_prompt"),
				textField("append_to_default"),
			},
			Outputs: []Output{
				{Name: "prompt", Type: "STRING"},
				{Name: "negative", Type: "STRING"},
			},
		},
		{
			Name:        "PassportResize",
			DisplayName: "Passport Resize",
			Category:    "image/passport",
			Inputs: []Field{
				{Name: "image", Type: "IMAGE"},
				enumField("output_size", passport.SizeNames(), passport.SizePrint600),
				enumField("crop_mode", cropModes, string(passport.CropCenter)),
			},
			Outputs: []Output{
				{Name: "image", Type: "IMAGE"},
				{Name: "info", Type: "STRING"},
			},
		},
		{
			Name:        "PassportTile",
			DisplayName: "Passport Tile (4x6)",
			Category:    "image/passport",
			Inputs: []Field{
				{Name: "image", Type: "IMAGE"},
			},
			Outputs: []Output{
				{Name: "tiled_image", Type: "IMAGE"},
			},
		},
	}
}
