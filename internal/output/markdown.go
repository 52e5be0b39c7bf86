package output

import (
	"fmt"
	"strings"

	"github.com/promptloom/promptloom/internal/core/assemble"
)

// MarkdownFormatter renders results as a markdown table.
type MarkdownFormatter struct{}

// FormatResult renders a prompt result as Markdown.
func (f *MarkdownFormatter) FormatResult(result *assemble.Result) (string, error) {
	if result == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("## Prompts\n\n")
	sb.WriteString("| # | Character | Prompt |\n")
	sb.WriteString("|---|-----------|--------|\n")

	for i, prompt := range result.Prompts {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s |\n",
			i,
			escapeMarkdownCell(characterFor(result, i)),
			escapeMarkdownCell(prompt),
		))
	}

	if result.Negative != "" {
		sb.WriteString(fmt.Sprintf("\n**Negative**: %s\n", escapeMarkdownCell(result.Negative)))
	}
	if result.Total > 0 {
		sb.WriteString(fmt.Sprintf("\n**Index**: %d of %d entries\n", result.Index, result.Total))
	}
	return sb.String(), nil
}

func escapeMarkdownCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
