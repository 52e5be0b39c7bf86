package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/core/assemble"
)

var rednoteCmd = &cobra.Command{
	Use:   "rednote",
	Short: "Assemble platform-safe prompts",
	Long: `Assemble a batch of platform-safe prompts with mood control.

The target model selects the prompt dialect: "tags" emits comma-joined
booru tags, "natural" emits full sentences.`,
	RunE: runRedNote,
}

func init() {
	rootCmd.AddCommand(rednoteCmd)

	rednoteCmd.Flags().StringP("file", "f", "characters_v1.txt", "Character prompt file")
	rednoteCmd.Flags().String("styles", "style_names_v1.txt", "Style prompt file")
	rednoteCmd.Flags().String("target", "tags", "Target model dialect: tags, natural")
	rednoteCmd.Flags().Int("start-index", 0, "First record index")
	rednoteCmd.Flags().IntP("size", "n", 1, "Number of prompts to assemble")
	rednoteCmd.Flags().String("mode", "sequential", "Index selection: sequential, random")
	rednoteCmd.Flags().String("preset", assemble.RedNotePreset, "Quality preset name")
	rednoteCmd.Flags().Float64("mood", 0.5, "Mood level in [0,1], despair to ecstasy")
	rednoteCmd.Flags().Bool("style-lock", false, "Cycle styles deterministically instead of at random")
	rednoteCmd.Flags().Bool("action", true, "Add a random action tag per prompt")
	rednoteCmd.Flags().Bool("background", true, "Add a random background tag per prompt")
	rednoteCmd.Flags().Bool("camera", true, "Add a random camera tag per prompt")
	rednoteCmd.Flags().String("custom", "", "Extra positive tags appended last")
	rednoteCmd.Flags().String("negative", "", "Extra negative tags")
	rednoteCmd.Flags().Uint64("seed", 0, "Random seed")
	addFormatFlag(rednoteCmd)
}

func parseTargetModel(value string) (assemble.TargetModel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(assemble.TargetTags):
		return assemble.TargetTags, nil
	case string(assemble.TargetNatural):
		return assemble.TargetNatural, nil
	default:
		return "", fmt.Errorf("unsupported target model: %s (use tags or natural)", value)
	}
}

func runRedNote(cmd *cobra.Command, args []string) error {
	dir, err := promptDir()
	if err != nil {
		return err
	}

	modeName, _ := cmd.Flags().GetString("mode")
	mode, err := parseMode(modeName)
	if err != nil {
		return err
	}

	targetName, _ := cmd.Flags().GetString("target")
	target, err := parseTargetModel(targetName)
	if err != nil {
		return err
	}

	mood, _ := cmd.Flags().GetFloat64("mood")
	if mood < 0 || mood > 1 {
		return fmt.Errorf("mood %v out of range [0,1]", mood)
	}

	file, _ := cmd.Flags().GetString("file")
	styles, _ := cmd.Flags().GetString("styles")
	startIndex, _ := cmd.Flags().GetInt("start-index")
	size, _ := cmd.Flags().GetInt("size")
	preset, _ := cmd.Flags().GetString("preset")
	styleLock, _ := cmd.Flags().GetBool("style-lock")
	action, _ := cmd.Flags().GetBool("action")
	background, _ := cmd.Flags().GetBool("background")
	camera, _ := cmd.Flags().GetBool("camera")
	custom, _ := cmd.Flags().GetString("custom")
	negative, _ := cmd.Flags().GetString("negative")
	seed, _ := cmd.Flags().GetUint64("seed")

	result := assemble.RedNote(assemble.RedNoteRequest{
		PromptDir:        dir,
		PromptFile:       file,
		StyleFile:        styles,
		TargetModel:      target,
		StartIndex:       startIndex,
		BatchSize:        size,
		Preset:           preset,
		Mode:             mode,
		MoodLevel:        mood,
		StyleLock:        styleLock,
		RandomAction:     action,
		RandomBackground: background,
		RandomCamera:     camera,
		CustomPositive:   custom,
		CustomNegative:   negative,
		Seed:             seed,
	})
	return renderResult(cmd, &result)
}
