package cmd

import (
	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/core/assemble"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble a single prompt",
	Long:  "Assemble one prompt from a character file using the quality preset formula",
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("file", "f", "characters_v1.txt", "Prompt file to read")
	generateCmd.Flags().IntP("index", "i", 0, "Record index (wraps modulo file length)")
	generateCmd.Flags().String("mode", "sequential", "Index selection: sequential, random")
	generateCmd.Flags().String("preset", "standard", "Quality preset name")
	generateCmd.Flags().Bool("action", true, "Add a random action tag")
	generateCmd.Flags().Bool("background", true, "Add a random background tag")
	generateCmd.Flags().Bool("camera", true, "Add a random camera tag")
	generateCmd.Flags().String("custom", "", "Extra positive tags appended last")
	generateCmd.Flags().String("negative", "", "Extra negative tags")
	generateCmd.Flags().Uint64("seed", 0, "Random seed")
	addFormatFlag(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
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
	index, _ := cmd.Flags().GetInt("index")
	preset, _ := cmd.Flags().GetString("preset")
	action, _ := cmd.Flags().GetBool("action")
	background, _ := cmd.Flags().GetBool("background")
	camera, _ := cmd.Flags().GetBool("camera")
	custom, _ := cmd.Flags().GetString("custom")
	negative, _ := cmd.Flags().GetString("negative")
	seed, _ := cmd.Flags().GetUint64("seed")

	result := assemble.Single(assemble.SingleRequest{
		PromptDir:        dir,
		PromptFile:       file,
		Index:            index,
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
