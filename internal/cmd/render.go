package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/core/assemble"
	"github.com/promptloom/promptloom/internal/core/tagstore"
	"github.com/promptloom/promptloom/internal/output"
)

// renderResult prints an assembly result in the requested format. Assembly
// failures still render (the placeholder prompt carries the message), but the
// command exits non-zero so scripts can tell the difference.
func renderResult(cmd *cobra.Command, result *assemble.Result) error {
	formatName, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	rendered, err := output.NewFormatter(format).FormatResult(result)
	if err != nil {
		return fmt.Errorf("formatting result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)

	if result.Failed() {
		return result.Err
	}
	return nil
}

// parseMode maps the --mode flag onto an index selection mode.
func parseMode(value string) (assemble.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(assemble.ModeSequential):
		return assemble.ModeSequential, nil
	case string(assemble.ModeRandom):
		return assemble.ModeRandom, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s (use sequential or random)", value)
	}
}

// promptDir resolves the prompt directory from config and applies any
// preset overlay found there.
func promptDir() (string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	if err := applyPresetOverlay(cfg.Prompt.Dir); err != nil {
		return "", err
	}
	return cfg.Prompt.Dir, nil
}

func applyPresetOverlay(dir string) error {
	overlay, err := tagstore.LoadOverlay(filepath.Join(dir, tagstore.OverlayFilename))
	if err != nil {
		return err
	}
	if len(overlay) > 0 {
		tagstore.ApplyOverlay(overlay)
	}
	return nil
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "table", "Output format: table, json, markdown")
}
