// Package promptfile reads line-oriented prompt files. Each non-blank line
// is one record: tags, optionally followed by a tab and a character name.
package promptfile

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "github.com/promptloom/promptloom/internal/errors"
)

// Entry is a single parsed prompt record.
type Entry struct {
	Tags          string `json:"tags"`
	CharacterName string `json:"character_name"`
}

// Parse reads a prompt file into ordered entries. Blank and whitespace-only
// lines are skipped; the first tab splits tags from the character name and
// both fields are trimmed. Tag content is not validated and duplicates are
// kept so that file order drives index resolution.
func Parse(path string) ([]Entry, error) {
	f, err := os.Open(path) // #nosec G304 -- prompt path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewFileNotFoundError("prompt file not found: " + filepath.Base(path))
		}
		return nil, apperrors.NewIOFailureError("open prompt file: " + err.Error())
	}
	defer f.Close() // nolint:errcheck

	var entries []Entry
	scanner := bufio.NewScanner(f)
	// Character tag lines can run long; lift the default 64KB token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tags := line
		name := ""
		if idx := strings.Index(line, "\t"); idx >= 0 {
			tags = strings.TrimSpace(line[:idx])
			name = strings.TrimSpace(line[idx+1:])
		}
		entries = append(entries, Entry{Tags: tags, CharacterName: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewIOFailureError("read prompt file: " + err.Error())
	}

	return entries, nil
}

// List returns the .txt files in dir, sorted by name. A missing or
// unreadable directory yields an empty list rather than an error so the
// node descriptors can still be served.
func List(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".txt") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files
}

// Path resolves a prompt filename against the prompt directory.
func Path(dir, filename string) string {
	return filepath.Join(dir, filename)
}

// ApplySuffix appends an aesthetic suffix to a tag block. Trailing commas on
// tags are stripped first; a non-empty suffix gets a ", " separator inserted
// unless it already starts with a comma. An empty suffix returns the trimmed
// tags unchanged.
func ApplySuffix(tags, suffix string) string {
	cleanTags := strings.TrimRight(strings.TrimSpace(tags), ",")

	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		return cleanTags
	}
	if !strings.HasPrefix(suffix, ",") {
		suffix = ", " + suffix
	}
	return cleanTags + suffix
}
