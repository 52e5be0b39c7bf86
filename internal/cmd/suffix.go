package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/core/assemble"
	"github.com/promptloom/promptloom/internal/core/tagstore"
)

var suffixCmd = &cobra.Command{
	Use:   "suffix",
	Short: "Resolve a quality suffix pair",
	Long:  "Print the positive suffix and negative prompt for a preset, or a custom override",
	RunE:  runSuffix,
}

func init() {
	rootCmd.AddCommand(suffixCmd)

	suffixCmd.Flags().String("preset", "standard", "Quality preset name")
	suffixCmd.Flags().Bool("custom", false, "Use the custom suffix instead of the preset")
	suffixCmd.Flags().String("custom-suffix", "", "Custom positive suffix")
	suffixCmd.Flags().String("custom-negative", "", "Custom negative prompt")
	suffixCmd.Flags().Bool("list", false, "List available preset names")
}

func runSuffix(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		for _, name := range tagstore.PresetNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	preset, _ := cmd.Flags().GetString("preset")
	useCustom, _ := cmd.Flags().GetBool("custom")
	customSuffix, _ := cmd.Flags().GetString("custom-suffix")
	customNegative, _ := cmd.Flags().GetString("custom-negative")

	suffix, negative := assemble.Suffix(assemble.SuffixRequest{
		Preset:         preset,
		UseCustom:      useCustom,
		CustomSuffix:   customSuffix,
		CustomNegative: customNegative,
	})

	fmt.Fprintf(cmd.OutOrStdout(), "Suffix: %s\n", suffix)
	fmt.Fprintf(cmd.OutOrStdout(), "Negative: %s\n", negative)
	return nil
}
