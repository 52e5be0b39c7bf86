package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/core/curate"
	"github.com/promptloom/promptloom/internal/core/promptfile"
)

var dailyCmd = &cobra.Command{
	Use:   "daily <source> <dest>",
	Short: "Sample a daily working set",
	Long:  "Sample N distinct lines from a prompt file into a new file",
	Args:  cobra.ExactArgs(2),
	RunE:  runDaily,
}

var filterCmd = &cobra.Command{
	Use:   "filter <source> <dest>",
	Short: "Drop lines containing banned keywords",
	Long:  "Copy a prompt file, dropping lines that contain any banned keyword (case-insensitive)",
	Args:  cobra.ExactArgs(2),
	RunE:  runFilter,
}

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List prompt files",
	Long:  "List the .txt prompt files in the configured prompt directory",
	RunE:  runFiles,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(filesCmd)

	dailyCmd.Flags().IntP("count", "n", curate.DefaultBatchSize, "Number of lines to sample")
	dailyCmd.Flags().Uint64("seed", 0, "Random seed")

	filterCmd.Flags().StringSlice("keyword", nil, "Banned keyword (repeatable)")
}

func runDaily(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")

	if err := curate.Sample(args[0], args[1], count, seed); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sampled %d lines into %s\n", count, args[1])
	return nil
}

func runFilter(cmd *cobra.Command, args []string) error {
	keywords, _ := cmd.Flags().GetStringSlice("keyword")

	result, err := curate.Filter(args[0], args[1], keywords)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Kept %d of %d lines in %s\n", result.Kept, result.Total, args[1])
	return nil
}

func runFiles(cmd *cobra.Command, args []string) error {
	dir, err := promptDir()
	if err != nil {
		return err
	}
	files := promptfile.List(dir)
	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No prompt files in %s\n", dir)
		return nil
	}
	for _, name := range files {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
