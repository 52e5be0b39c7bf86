package output

import (
	"encoding/json"

	"github.com/promptloom/promptloom/internal/core/assemble"
)

// JSONFormatter renders results as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatResult renders a prompt result as JSON.
func (f *JSONFormatter) FormatResult(result *assemble.Result) (string, error) {
	if result == nil {
		return "", nil
	}

	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
