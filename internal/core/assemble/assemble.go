// Package assemble builds positive/negative prompt pairs from tag files and
// the fixed tagstore vocabulary. Each variant composes an ordered list of
// named fragment layers feeding a single join stage, so the concatenation
// order stays auditable and each layer is testable on its own.
//
// Failure contract: assemblers never return an error to the host graph. A
// file that cannot be parsed, an empty file, or a cross-product over the cap
// produces a placeholder "Error: ..." prompt and an empty negative; the
// underlying envelope is kept on the Result for logging only.
package assemble

import (
	"strings"

	"github.com/promptloom/promptloom/internal/core/picker"
)

// Mode selects how a record index is resolved.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeRandom     Mode = "random"
)

// MaxCombinedPrompts caps the combiner cross product.
const MaxCombinedPrompts = 100

// Result is the output of any assembler variant. Single-prompt variants
// populate exactly one element of Prompts and CharacterNames.
type Result struct {
	Prompts        []string `json:"prompts"`
	Negative       string   `json:"negative"`
	CharacterNames []string `json:"character_names,omitempty"`
	MoodTags       []string `json:"mood_tags,omitempty"`
	Index          int      `json:"current_index"`
	Total          int      `json:"total_prompts"`

	// Err carries the underlying failure when Prompts holds a placeholder.
	// Never serialized; the host graph only sees well-typed strings.
	Err error `json:"-"`
}

// Failed reports whether the result carries a placeholder error prompt.
func (r Result) Failed() bool { return r.Err != nil }

// layer is one named fragment producer in the assembly pipeline.
type layer struct {
	name    string
	produce func() string
}

// pipeline joins the non-empty fragments in declaration order. Every
// fragment is trimmed and stripped of a single trailing comma first.
type pipeline struct {
	layers []layer
}

func (p *pipeline) add(name string, produce func() string) {
	p.layers = append(p.layers, layer{name: name, produce: produce})
}

func (p *pipeline) addStatic(name, fragment string) {
	p.add(name, func() string { return fragment })
}

func (p *pipeline) join() string {
	parts := make([]string, 0, len(p.layers))
	for _, l := range p.layers {
		if frag := cleanFragment(l.produce()); frag != "" {
			parts = append(parts, frag)
		}
	}
	return strings.Join(parts, ", ")
}

// cleanFragment trims a fragment and strips one trailing comma.
func cleanFragment(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ",")
	return strings.TrimSpace(s)
}

// stripLeadingComma removes a leading comma separator from preset and custom
// blocks, which are stored with one for concatenation convenience.
func stripLeadingComma(s string) string {
	return strings.TrimSpace(strings.TrimLeft(s, ", "))
}

// combineNegative joins the preset negative with caller-supplied custom
// negative text. Custom alone when the preset has none; empty when both are.
func combineNegative(presetNegative, custom string) string {
	custom = strings.TrimSpace(custom)
	if custom == "" {
		return presetNegative
	}
	if presetNegative == "" {
		return custom
	}
	return presetNegative + ", " + custom
}

// resolveIndex picks a record index for the given mode. Sequential wraps via
// modulo; random draws from the invocation's seeded stream.
func resolveIndex(mode Mode, index, total int, p *picker.Picker) int {
	if total <= 0 {
		return 0
	}
	if mode == ModeRandom {
		return p.IntN(total)
	}
	return ((index % total) + total) % total
}

// failure wraps an error into a placeholder result honoring the
// never-crash-the-host contract.
func failure(placeholder string, err error) Result {
	return Result{
		Prompts:  []string{placeholder},
		Negative: "",
		Err:      err,
	}
}
