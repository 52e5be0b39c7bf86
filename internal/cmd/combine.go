package cmd

import (
	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/core/assemble"
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Cross-combine characters with styles",
	Long:  "Assemble the cross product of a character file and a style file, style varying fastest",
	RunE:  runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().String("characters", "characters_v1.txt", "Character prompt file")
	combineCmd.Flags().String("styles", "style_names_v1.txt", "Style prompt file")
	combineCmd.Flags().Int("char-start", 0, "First character index")
	combineCmd.Flags().Int("style-start", 0, "First style index")
	combineCmd.Flags().Int("chars", 1, "Number of characters")
	combineCmd.Flags().Int("styles-count", 1, "Number of styles per character")
	combineCmd.Flags().String("preset", "dynamic", "Quality preset name")
	combineCmd.Flags().Bool("action", true, "Add a random action tag per prompt")
	combineCmd.Flags().Bool("background", true, "Add a random background tag per prompt")
	combineCmd.Flags().Bool("camera", true, "Add a random camera tag per prompt")
	combineCmd.Flags().String("custom", "", "Extra positive tags appended last")
	combineCmd.Flags().String("negative", "", "Extra negative tags")
	combineCmd.Flags().Uint64("seed", 0, "Random seed")
	addFormatFlag(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	dir, err := promptDir()
	if err != nil {
		return err
	}

	characters, _ := cmd.Flags().GetString("characters")
	styles, _ := cmd.Flags().GetString("styles")
	charStart, _ := cmd.Flags().GetInt("char-start")
	styleStart, _ := cmd.Flags().GetInt("style-start")
	charCount, _ := cmd.Flags().GetInt("chars")
	styleCount, _ := cmd.Flags().GetInt("styles-count")
	preset, _ := cmd.Flags().GetString("preset")
	action, _ := cmd.Flags().GetBool("action")
	background, _ := cmd.Flags().GetBool("background")
	camera, _ := cmd.Flags().GetBool("camera")
	custom, _ := cmd.Flags().GetString("custom")
	negative, _ := cmd.Flags().GetString("negative")
	seed, _ := cmd.Flags().GetUint64("seed")

	result := assemble.Combine(assemble.CombineRequest{
		PromptDir:        dir,
		CharacterFile:    characters,
		StyleFile:        styles,
		CharStartIndex:   charStart,
		StyleStartIndex:  styleStart,
		CharCount:        charCount,
		StyleCount:       styleCount,
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
