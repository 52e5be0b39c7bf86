package nodes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func findNode(t *testing.T, reg []Node, name string) Node {
	t.Helper()
	for _, n := range reg {
		if n.Name == name {
			return n
		}
	}
	t.Fatalf("node %s not registered", name)
	return Node{}
}

func inputNames(n Node) []string {
	out := make([]string, 0, len(n.Inputs))
	for _, f := range n.Inputs {
		out = append(out, f.Name)
	}
	return out
}

func TestRegistryNodeSet(t *testing.T) {
	reg := Registry([]string{"characters_v1.txt"})
	names := make([]string, 0, len(reg))
	for _, n := range reg {
		names = append(names, n.Name)
	}
	require.Equal(t, []string{
		"AutoPromptLoader",
		"AutoPromptBatch",
		"AutoPromptCombiner",
		"AutoPromptRedNote",
		"SuffixEditor",
		"PassportPrompt",
		"PassportResize",
		"PassportTile",
	}, names)
}

func TestLoaderContract(t *testing.T) {
	reg := Registry([]string{"a.txt", "b.txt"})
	loader := findNode(t, reg, "AutoPromptLoader")

	require.Equal(t, []string{
		"prompt_file", "index", "mode", "preset",
		"random_action", "random_background", "random_camera",
		"custom_positive", "custom_negative", "seed",
	}, inputNames(loader))

	require.Equal(t, "a.txt", loader.Inputs[0].Default)
	require.Equal(t, []string{"sequential", "random"}, loader.Inputs[2].Choices)
	require.Equal(t, "standard", loader.Inputs[3].Default)

	require.Len(t, loader.Outputs, 5)
	require.Equal(t, "current_index", loader.Outputs[3].Name)
	require.Equal(t, "INT", loader.Outputs[3].Type)
}

func TestRedNoteContract(t *testing.T) {
	reg := Registry([]string{"chars.txt", "style_names_v1.txt"})
	rn := findNode(t, reg, "AutoPromptRedNote")

	require.Equal(t, "style_names_v1.txt", rn.Inputs[1].Default)
	require.Equal(t, "RedNote", rn.Inputs[5].Choices[0])
	require.Equal(t, "mood_level", rn.Inputs[7].Name)
	require.Equal(t, 0.1, rn.Inputs[7].Step)

	require.True(t, rn.Outputs[0].List)
	require.False(t, rn.Outputs[1].List)
	require.Equal(t, "mood_tags", rn.Outputs[3].Name)
}

func TestSeedFieldRange(t *testing.T) {
	reg := Registry(nil)
	loader := findNode(t, reg, "AutoPromptLoader")
	seed := loader.Inputs[len(loader.Inputs)-1]
	require.Equal(t, "seed", seed.Name)
	require.Equal(t, uint64(1<<64-1), seed.Max)
	require.True(t, seed.Optional)
}

func TestPassportContract(t *testing.T) {
	reg := Registry(nil)

	resize := findNode(t, reg, "PassportResize")
	require.Equal(t, []string{"2x2_inch_600dpi", "2x2_inch_300dpi", "digital_only"}, resize.Inputs[1].Choices)
	require.Equal(t, []string{"center", "top", "none"}, resize.Inputs[2].Choices)

	tile := findNode(t, reg, "PassportTile")
	require.Equal(t, []Output{{Name: "tiled_image", Type: "IMAGE"}}, tile.Outputs)
}
