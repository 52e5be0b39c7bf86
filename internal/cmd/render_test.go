package cmd

import (
	"bytes"
	"image"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptloom/promptloom/internal/core/assemble"
)

func TestParseMode(t *testing.T) {
	for input, want := range map[string]assemble.Mode{
		"":           assemble.ModeSequential,
		"sequential": assemble.ModeSequential,
		" Random ":   assemble.ModeRandom,
	} {
		mode, err := parseMode(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, mode)
	}

	_, err := parseMode("shuffled")
	require.Error(t, err)
}

func TestParseTargetModel(t *testing.T) {
	target, err := parseTargetModel("")
	require.NoError(t, err)
	assert.Equal(t, assemble.TargetTags, target)

	target, err = parseTargetModel("Natural")
	require.NoError(t, err)
	assert.Equal(t, assemble.TargetNatural, target)

	_, err = parseTargetModel("sdxl")
	require.Error(t, err)
}

func TestAssemblyFlagDefaultsMatchNodeContract(t *testing.T) {
	// The node descriptors default all three random layers on; the CLI
	// flags mirror that contract.
	for _, cmd := range []*cobra.Command{generateCmd, batchCmd, combineCmd, rednoteCmd} {
		for _, name := range []string{"action", "background", "camera"} {
			f := cmd.Flags().Lookup(name)
			require.NotNil(t, f, "%s --%s", cmd.Name(), name)
			assert.Equal(t, "true", f.DefValue, "%s --%s", cmd.Name(), name)
		}
	}
}

func TestEncodeImageFormats(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	var png bytes.Buffer
	require.NoError(t, encodeImage(&png, img, "png", 0))
	assert.NotZero(t, png.Len())

	var jpg bytes.Buffer
	require.NoError(t, encodeImage(&jpg, img, "jpg", 500))
	assert.NotZero(t, jpg.Len())

	require.Error(t, encodeImage(&bytes.Buffer{}, img, "webp", 80))
}
