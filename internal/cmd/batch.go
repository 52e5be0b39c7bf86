package cmd

import (
	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/core/assemble"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Assemble a batch of prompts",
	Long:  "Assemble a run of prompts starting at an index, one per record step",
	RunE:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("file", "f", "characters_v1.txt", "Prompt file to read")
	batchCmd.Flags().Int("start-index", 0, "First record index")
	batchCmd.Flags().IntP("size", "n", 5, "Number of prompts to assemble")
	batchCmd.Flags().String("mode", "sequential", "Index selection: sequential, random")
	batchCmd.Flags().String("preset", "standard", "Quality preset name")
	batchCmd.Flags().Bool("action", true, "Add a random action tag per prompt")
	batchCmd.Flags().Bool("background", true, "Add a random background tag per prompt")
	batchCmd.Flags().Bool("camera", true, "Add a random camera tag per prompt")
	batchCmd.Flags().String("custom", "", "Extra positive tags appended last")
	batchCmd.Flags().String("negative", "", "Extra negative tags")
	batchCmd.Flags().Uint64("seed", 0, "Random seed")
	addFormatFlag(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir, err := promptDir()
	if err != nil {
		return err
	}

	modeName, _ := cmd.Flags().GetString("mode")
	mode, err := parseMode(modeName)
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	startIndex, _ := cmd.Flags().GetInt("start-index")
	size, _ := cmd.Flags().GetInt("size")
	preset, _ := cmd.Flags().GetString("preset")
	action, _ := cmd.Flags().GetBool("action")
	background, _ := cmd.Flags().GetBool("background")
	camera, _ := cmd.Flags().GetBool("camera")
	custom, _ := cmd.Flags().GetString("custom")
	negative, _ := cmd.Flags().GetString("negative")
	seed, _ := cmd.Flags().GetUint64("seed")

	result := assemble.Batch(assemble.BatchRequest{
		PromptDir:        dir,
		PromptFile:       file,
		StartIndex:       startIndex,
		BatchSize:        size,
		Mode:             mode,
		Preset:           preset,
		RandomAction:     action,
		RandomBackground: background,
		RandomCamera:     camera,
		CustomPositive:   custom,
		CustomNegative:   negative,
		Seed:             seed,
	})
	return renderResult(cmd, &result)
}
