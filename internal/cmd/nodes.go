package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/core/nodes"
	"github.com/promptloom/promptloom/internal/core/promptfile"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Print the node registry",
	Long:  "Print the graph node contracts as JSON, with file choices resolved against the prompt directory",
	RunE:  runNodes,
}

func init() {
	rootCmd.AddCommand(nodesCmd)
}

func runNodes(cmd *cobra.Command, args []string) error {
	dir, err := promptDir()
	if err != nil {
		return err
	}

	registry := nodes.Registry(promptfile.List(dir))
	encoded, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
