package cleaner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanStripsWeights(t *testing.T) {
	require.Equal(t, "hollow eyes, glassy eyes", Clean("(hollow eyes:1.3), (glassy eyes:1.4)"))
	require.Equal(t, "red hair", Clean("{red hair:1}"))
}

func TestCleanUnderscoresAndBraces(t *testing.T) {
	require.Equal(t, "long hair, twin tails", Clean("long_hair, {twin_tails}"))
}

func TestCleanRemovesGirlToken(t *testing.T) {
	require.Equal(t, "solo, blue eyes", Clean("1girl, solo, blue eyes"))
	require.Equal(t, "solo", Clean("1GIRL, solo"))
	// "1girls" is not the standalone token and survives.
	require.Equal(t, "1girls", Clean("1girls"))
	// An interior token leaves its surrounding commas behind; only the
	// edges are trimmed. The transformation order is fixed.
	require.Equal(t, "red hair, , ribbon", Clean("(red_hair:1.2), 1girl, ribbon"))
}

func TestCleanRemovesLoraBoilerplate(t *testing.T) {
	require.Equal(t, "mystyle", Clean("lora trigger: mystyle"))
	require.Equal(t, "mystyle", Clean("LoRA Triggers: mystyle"))
}

func TestCleanCommaSpacing(t *testing.T) {
	require.Equal(t, "tag1, tag2, tag3", Clean("tag1,tag2,  tag3"))
}

func TestCleanTrailing(t *testing.T) {
	require.Equal(t, "tag1, tag2", Clean("  tag1, tag2, "))
}

func TestCleanEmpty(t *testing.T) {
	require.Empty(t, Clean(""))
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"(hollow eyes:1.3), long_hair, 1girl, lora triggers: foo,bar, ",
		"plain text already clean",
		"{nested_(weird:2.5)_thing}",
	}
	for _, in := range inputs {
		once := Clean(in)
		require.Equal(t, once, Clean(once), "input %q", in)
	}
}
