package output

import (
	"fmt"
	"strings"

	"github.com/promptloom/promptloom/internal/core/assemble"
)

// Format represents an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formatter renders assembled prompt results.
type Formatter interface {
	FormatResult(result *assemble.Result) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMarkdown):
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}

// characterFor returns the character name paired with prompt i, if any.
func characterFor(result *assemble.Result, i int) string {
	if i < len(result.CharacterNames) {
		return result.CharacterNames[i]
	}
	return ""
}

// moodFor returns the mood phrase paired with prompt i, if any.
func moodFor(result *assemble.Result, i int) string {
	if i < len(result.MoodTags) {
		return result.MoodTags[i]
	}
	return ""
}
