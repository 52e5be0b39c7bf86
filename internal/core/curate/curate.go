// Package curate holds the prompt-library maintenance operations: sampling
// a daily production batch and filtering out lines with banned keywords.
package curate

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/promptloom/promptloom/internal/core/picker"
	apperrors "github.com/promptloom/promptloom/internal/errors"
)

// DefaultBatchSize is the daily production quota.
const DefaultBatchSize = 50

// readLines returns the non-blank lines of path in file order.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewFileNotFoundError(fmt.Sprintf("prompt file %s not found", path))
		}
		return nil, apperrors.NewIOFailureError(fmt.Sprintf("open %s: %v", path, err))
	}
	defer f.Close() // nolint:errcheck

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewIOFailureError(fmt.Sprintf("read %s: %v", path, err))
	}
	return lines, nil
}

func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return apperrors.NewIOFailureError(fmt.Sprintf("write %s: %v", path, err))
	}
	return nil
}

// Sample copies n distinct random lines from srcPath to dstPath. The seed
// fixes the draw, so a rerun with the same inputs rebuilds the same batch.
// Sampling more lines than the source holds is an error.
func Sample(srcPath, dstPath string, n int, seed uint64) error {
	if n < 1 {
		n = DefaultBatchSize
	}

	lines, err := readLines(srcPath)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return apperrors.NewEmptyInputError(fmt.Sprintf("no lines in %s", srcPath))
	}
	if n > len(lines) {
		return apperrors.NewInvalidInputError(
			fmt.Sprintf("cannot sample %d lines from %d available", n, len(lines)))
	}

	batch := picker.New(seed).Sample(lines, n)
	return writeLines(dstPath, batch)
}

// FilterResult reports what a Filter run did.
type FilterResult struct {
	Total int `json:"total_lines"`
	Kept  int `json:"kept_lines"`
}

// Filter copies srcPath to dstPath dropping every line that contains any of
// the banned keywords. Matching is a case-insensitive substring test.
func Filter(srcPath, dstPath string, banned []string) (FilterResult, error) {
	lines, err := readLines(srcPath)
	if err != nil {
		return FilterResult{}, err
	}

	lowered := make([]string, len(banned))
	for i, kw := range banned {
		lowered[i] = strings.ToLower(kw)
	}

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		lineLower := strings.ToLower(line)
		drop := false
		for _, kw := range lowered {
			if kw != "" && strings.Contains(lineLower, kw) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, line)
		}
	}

	if err := writeLines(dstPath, kept); err != nil {
		return FilterResult{}, err
	}
	return FilterResult{Total: len(lines), Kept: len(kept)}, nil
}
