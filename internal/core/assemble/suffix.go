package assemble

import (
	"strings"

	"github.com/promptloom/promptloom/internal/core/tagstore"
)

// SuffixRequest selects a quality suffix/negative pair, either from a
// preset or caller-supplied custom text with preset fallback when blank.
type SuffixRequest struct {
	Preset         string `json:"preset"`
	UseCustom      bool   `json:"use_custom"`
	CustomSuffix   string `json:"custom_suffix"`
	CustomNegative string `json:"custom_negative"`
}

// Suffix resolves the pair. Unknown preset names fall back to the default
// suffix/negative so saved workflows keep rendering.
func Suffix(req SuffixRequest) (suffix, negative string) {
	preset := tagstore.LookupPreset(req.Preset)

	if req.UseCustom {
		suffix = strings.TrimSpace(req.CustomSuffix)
		if suffix == "" {
			suffix = preset.Positive
		}
		negative = strings.TrimSpace(req.CustomNegative)
		if negative == "" {
			negative = tagstore.DefaultNegative
		}
		return suffix, negative
	}

	return preset.Positive, preset.Negative
}
