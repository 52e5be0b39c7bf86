package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/promptloom/promptloom/internal/core/assemble"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatResult renders a prompt result as a table.
func (f *TableFormatter) FormatResult(result *assemble.Result) (string, error) {
	if result == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)

	hasMood := len(result.MoodTags) > 0
	if hasMood {
		t.AppendHeader(table.Row{"#", "Character", "Mood", "Prompt"})
	} else {
		t.AppendHeader(table.Row{"#", "Character", "Prompt"})
	}

	for i, prompt := range result.Prompts {
		if hasMood {
			t.AppendRow(table.Row{i, characterFor(result, i), moodFor(result, i), prompt})
		} else {
			t.AppendRow(table.Row{i, characterFor(result, i), prompt})
		}
	}

	rendered := t.Render()
	if result.Negative != "" {
		rendered += fmt.Sprintf("\nNegative: %s", result.Negative)
	}
	if result.Total > 0 {
		rendered += fmt.Sprintf("\nIndex %d of %d entries", result.Index, result.Total)
	}
	return rendered, nil
}
