// Package cleaner normalizes tag-soup fragments into natural-language-safe
// text for models that read sentences instead of booru tags.
package cleaner

import (
	"regexp"
	"strings"
)

var (
	weightRe      = regexp.MustCompile(`:\d+(\.\d+)?`)
	girlTokenRe   = regexp.MustCompile(`(?i)\b1girl\b`)
	loraTriggerRe = regexp.MustCompile(`(?i)lora triggers?:?`)
	commaSpaceRe  = regexp.MustCompile(`,\s*`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
)

// Clean strips prompt-weighting syntax and booru boilerplate from text.
// The transformation order is fixed; changing it changes output:
// weights, parens/braces, underscores, "1girl", lora-trigger boilerplate,
// comma spacing, whitespace collapse, trailing comma trim.
// Pure and idempotent.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = weightRe.ReplaceAllString(text, "")

	text = strings.NewReplacer("(", "", ")", "", "{", "", "}", "").Replace(text)

	text = strings.ReplaceAll(text, "_", " ")

	text = girlTokenRe.ReplaceAllString(text, "")
	text = loraTriggerRe.ReplaceAllString(text, "")

	text = commaSpaceRe.ReplaceAllString(text, ", ")

	text = strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
	text = strings.Trim(text, ", ")

	return text
}
