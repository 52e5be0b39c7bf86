package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/promptloom/promptloom/internal/core/assemble"
)

func sampleResult() *assemble.Result {
	return &assemble.Result{
		Prompts:        []string{"quality, red hair", "quality, blue eyes"},
		Negative:       "worst quality",
		CharacterNames: []string{"Asuka", "Rei"},
		Index:          0,
		Total:          2,
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"":         FormatTable,
		"table":    FormatTable,
		" JSON ":   FormatJSON,
		"markdown": FormatMarkdown,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got)
	}

	_, err := ParseFormat("yaml")
	require.Error(t, err)
}

func TestTableFormatter(t *testing.T) {
	rendered, err := (&TableFormatter{}).FormatResult(sampleResult())
	require.NoError(t, err)
	require.Contains(t, rendered, "Asuka")
	require.Contains(t, rendered, "quality, blue eyes")
	require.Contains(t, rendered, "Negative: worst quality")
	require.Contains(t, rendered, "Index 0 of 2 entries")
}

func TestTableFormatterMoodColumn(t *testing.T) {
	res := sampleResult()
	res.MoodTags = []string{"calm", "calm"}

	rendered, err := (&TableFormatter{}).FormatResult(res)
	require.NoError(t, err)
	require.Contains(t, rendered, "MOOD")
	require.Contains(t, rendered, "calm")
}

func TestJSONFormatter(t *testing.T) {
	rendered, err := (&JSONFormatter{Indent: true}).FormatResult(sampleResult())
	require.NoError(t, err)

	var decoded assemble.Result
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))
	require.Equal(t, []string{"quality, red hair", "quality, blue eyes"}, decoded.Prompts)
	require.Equal(t, "worst quality", decoded.Negative)
}

func TestMarkdownFormatter(t *testing.T) {
	res := sampleResult()
	res.Prompts[0] = "with | pipe"

	rendered, err := (&MarkdownFormatter{}).FormatResult(res)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(rendered, "## Prompts"))
	require.Contains(t, rendered, "with \\| pipe")
	require.Contains(t, rendered, "**Negative**: worst quality")
}

func TestFormattersHandleNil(t *testing.T) {
	for _, f := range []Formatter{&TableFormatter{}, &JSONFormatter{}, &MarkdownFormatter{}} {
		rendered, err := f.FormatResult(nil)
		require.NoError(t, err)
		require.Empty(t, rendered)
	}
}
