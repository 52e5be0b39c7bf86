package assemble

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/promptloom/promptloom/internal/core/tagstore"
	apperrors "github.com/promptloom/promptloom/internal/errors"
)

func promptDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestSingleSequentialFormula(t *testing.T) {
	dir := promptDir(t, map[string]string{
		"chars.txt": "red hair, ribbon\tAsuka\nblue eyes, twin tails\tRei\n",
	})

	res := Single(SingleRequest{
		PromptDir:      dir,
		PromptFile:     "chars.txt",
		Index:          1,
		Mode:           ModeSequential,
		Preset:         "standard",
		CustomPositive: ", looking at viewer",
		CustomNegative: "extra arms",
	})

	require.False(t, res.Failed())
	require.Len(t, res.Prompts, 1)
	require.Equal(t, tagstore.QualityTags+", blue eyes, twin tails, looking at viewer", res.Prompts[0])
	require.Equal(t, tagstore.StandardNegative+", simple background, extra arms", res.Negative)
	require.Equal(t, []string{"Rei"}, res.CharacterNames)
	require.Equal(t, 1, res.Index)
	require.Equal(t, 2, res.Total)
}

func TestSingleIndexWraps(t *testing.T) {
	dir := promptDir(t, map[string]string{"chars.txt": "a\nb\nc\n"})

	res := Single(SingleRequest{PromptDir: dir, PromptFile: "chars.txt", Index: 7, Mode: ModeSequential, Preset: "none"})
	require.Equal(t, 1, res.Index)
	require.Equal(t, "b", res.Prompts[0])
}

func TestSingleSeedReproducible(t *testing.T) {
	dir := promptDir(t, map[string]string{"chars.txt": "a\nb\nc\nd\ne\n"})

	req := SingleRequest{
		PromptDir:        dir,
		PromptFile:       "chars.txt",
		Mode:             ModeRandom,
		Preset:           "standard",
		RandomAction:     true,
		RandomBackground: true,
		RandomCamera:     true,
		Seed:             1234,
	}

	first := Single(req)
	second := Single(req)
	require.Equal(t, first.Prompts, second.Prompts)
	require.Equal(t, first.Index, second.Index)

	req.Seed = 1235
	third := Single(req)
	require.NotEqual(t, first.Prompts, third.Prompts)
}

func TestSingleMissingFilePlaceholder(t *testing.T) {
	res := Single(SingleRequest{PromptDir: t.TempDir(), PromptFile: "nope.txt", Preset: "standard"})

	require.True(t, res.Failed())
	require.Equal(t, []string{"Error: nope.txt not found"}, res.Prompts)
	require.Empty(t, res.Negative)
	require.Equal(t, apperrors.CodeFileNotFound, apperrors.CodeOf(res.Err))
}

func TestSingleEmptyFilePlaceholder(t *testing.T) {
	dir := promptDir(t, map[string]string{"empty.txt": "\n\n"})

	res := Single(SingleRequest{PromptDir: dir, PromptFile: "empty.txt", Preset: "standard"})
	require.True(t, res.Failed())
	require.Equal(t, []string{"Error: No prompts found in file"}, res.Prompts)
	require.Equal(t, apperrors.CodeEmptyInput, apperrors.CodeOf(res.Err))
}

func TestSingleNegativeFallsBackToCustom(t *testing.T) {
	dir := promptDir(t, map[string]string{"chars.txt": "a\n"})

	res := Single(SingleRequest{PromptDir: dir, PromptFile: "chars.txt", Preset: "none", CustomNegative: "blurry"})
	require.Equal(t, "blurry", res.Negative)

	res = Single(SingleRequest{PromptDir: dir, PromptFile: "chars.txt", Preset: "none"})
	require.Empty(t, res.Negative)
}

func TestBatchSequentialWrapsModulo(t *testing.T) {
	dir := promptDir(t, map[string]string{"chars.txt": "a\tA\nb\tB\nc\tC\n"})

	res := Batch(BatchRequest{
		PromptDir:  dir,
		PromptFile: "chars.txt",
		StartIndex: 2,
		BatchSize:  4,
		Mode:       ModeSequential,
		Preset:     "none",
	})

	require.False(t, res.Failed())
	require.Equal(t, []string{"c", "a", "b", "c"}, res.Prompts)
	require.Equal(t, []string{"C", "A", "B", "C"}, res.CharacterNames)
	require.Equal(t, 3, res.Total)
}

func TestBatchSharedSeededStream(t *testing.T) {
	dir := promptDir(t, map[string]string{"chars.txt": "a\nb\n"})

	req := BatchRequest{
		PromptDir:        dir,
		PromptFile:       "chars.txt",
		BatchSize:        5,
		Mode:             ModeSequential,
		Preset:           "none",
		RandomAction:     true,
		RandomBackground: true,
		Seed:             9,
	}

	require.Equal(t, Batch(req).Prompts, Batch(req).Prompts)
}

func TestCombineCrossProductStyleVariesFastest(t *testing.T) {
	dir := promptDir(t, map[string]string{
		"chars.txt":  "char0\nchar1\n",
		"styles.txt": "style0\nstyle1\nstyle2\n",
	})

	res := Combine(CombineRequest{
		PromptDir:     dir,
		CharacterFile: "chars.txt",
		StyleFile:     "styles.txt",
		CharCount:     2,
		StyleCount:    2,
		StyleStartIndex: 2,
		Preset:        "none",
	})

	require.False(t, res.Failed())
	require.Equal(t, []string{
		"style2, char0",
		"style0, char0",
		"style2, char1",
		"style0, char1",
	}, res.Prompts)
	require.Equal(t, 4, res.Total)
}

func TestCombineCapExceeded(t *testing.T) {
	dir := promptDir(t, map[string]string{
		"chars.txt":  "a\n",
		"styles.txt": "s\n",
	})

	res := Combine(CombineRequest{
		PromptDir:     dir,
		CharacterFile: "chars.txt",
		StyleFile:     "styles.txt",
		CharCount:     11,
		StyleCount:    10,
		Preset:        "dynamic",
	})

	require.True(t, res.Failed())
	require.Equal(t, []string{"Error: Total prompts (110) exceeds max (100)"}, res.Prompts)
	require.Empty(t, res.Negative)
	require.Equal(t, apperrors.CodeLimitExceeded, apperrors.CodeOf(res.Err))
}

func TestCombineAtCapSucceeds(t *testing.T) {
	dir := promptDir(t, map[string]string{
		"chars.txt":  "a\nb\nc\n",
		"styles.txt": "s\nt\nu\n",
	})

	res := Combine(CombineRequest{
		PromptDir:     dir,
		CharacterFile: "chars.txt",
		StyleFile:     "styles.txt",
		CharCount:     10,
		StyleCount:    10,
		Preset:        "none",
	})
	require.False(t, res.Failed())
	require.Len(t, res.Prompts, 100)
}

func TestNeedsSafetyShorts(t *testing.T) {
	require.True(t, NeedsSafetyShorts("sitting on chair, legs crossed"))
	require.True(t, NeedsSafetyShorts("hugging plushie"))
	require.True(t, NeedsSafetyShorts("lying on grass"))
	require.True(t, NeedsSafetyShorts("flying")) // substring match is literal
	require.False(t, NeedsSafetyShorts("standing in rain"))
	require.False(t, NeedsSafetyShorts("Sitting")) // case-sensitive
}

func TestRedNoteTagDialectLayers(t *testing.T) {
	dir := promptDir(t, map[string]string{
		"chars.txt":  "red hair\tMomo\n",
		"styles.txt": "watercolor style\n",
	})

	res := RedNote(RedNoteRequest{
		PromptDir:  dir,
		PromptFile: "chars.txt",
		StyleFile:  "styles.txt",
		Preset:     RedNotePreset,
		Mode:       ModeSequential,
		BatchSize:  1,
		MoodLevel:  0.5,
	})

	require.False(t, res.Failed())
	require.Len(t, res.Prompts, 1)
	prompt := res.Prompts[0]

	// Fixed layer order: quality, rednote style, style file, character,
	// mood, rednote character enforcers.
	iQuality := strings.Index(prompt, tagstore.QualityTags)
	iStyle := strings.Index(prompt, "watercolor style")
	iChar := strings.Index(prompt, "red hair")
	iMood := strings.Index(prompt, "(stoned face:1.3)")
	iEnforcer := strings.Index(prompt, "(solo:1.5)")
	require.True(t, iQuality >= 0 && iStyle > iQuality && iChar > iStyle && iMood > iChar && iEnforcer > iMood, "layer order broken: %s", prompt)

	require.Contains(t, res.Negative, tagstore.RedNoteNegBase)
	require.Contains(t, res.Negative, tagstore.RedNoteNegSafety)
	require.Equal(t, []string{"Momo"}, res.CharacterNames)
	require.Equal(t, []string{tagstore.MoodPhrase(0.5)}, res.MoodTags)
}

func TestRedNoteSafetyShortsFollowTriggerActions(t *testing.T) {
	dir := promptDir(t, map[string]string{
		"chars.txt":  "plain tags\n",
		"styles.txt": "\n",
	})

	sawShorts := false
	sawPlain := false
	for seed := uint64(0); seed < 40; seed++ {
		res := RedNote(RedNoteRequest{
			PromptDir:    dir,
			PromptFile:   "chars.txt",
			StyleFile:    "styles.txt",
			Preset:       RedNotePreset,
			Mode:         ModeSequential,
			BatchSize:    1,
			RandomAction: true,
			Seed:         seed,
		})
		require.False(t, res.Failed())
		prompt := res.Prompts[0]

		hasShorts := strings.Contains(prompt, tagstore.RedNoteSafetyShorts)
		hasTrigger := strings.Contains(prompt, "sitting") ||
			strings.Contains(prompt, "hugging") ||
			strings.Contains(prompt, "lying")
		if hasShorts {
			require.True(t, hasTrigger, "shorts without trigger action: %s", prompt)
			sawShorts = true
		} else {
			sawPlain = true
		}
	}
	require.True(t, sawShorts, "expected at least one trigger action in 40 seeds")
	require.True(t, sawPlain, "expected at least one non-trigger action in 40 seeds")
}

func TestRedNoteNaturalDialect(t *testing.T) {
	dir := promptDir(t, map[string]string{
		"chars.txt":  "(red_hair:1.2), 1girl, ribbon\tMomo\n",
		"styles.txt": "watercolor_style\n",
	})

	res := RedNote(RedNoteRequest{
		PromptDir:   dir,
		PromptFile:  "chars.txt",
		StyleFile:   "styles.txt",
		TargetModel: TargetNatural,
		Preset:      RedNotePreset,
		Mode:        ModeSequential,
		BatchSize:   1,
		MoodLevel:   0.1,
		StyleLock:   true,
	})

	require.False(t, res.Failed())
	prompt := res.Prompts[0]

	// Interior "1girl" removal leaves the surrounding commas behind.
	require.True(t, strings.HasPrefix(prompt, tagstore.NaturalPrefix+" Momo, a girl with red hair, , ribbon."), prompt)
	require.Contains(t, prompt, tagstore.NaturalConnector("mood"))
	require.Contains(t, prompt, tagstore.NaturalStylePrefix+" watercolor style.")
	require.NotContains(t, prompt, "(")
	require.NotContains(t, prompt, "_")
	require.NotContains(t, prompt, ":1.")

	// Natural dialect never carries a negative.
	require.Empty(t, res.Negative)
}

func TestRedNoteMissingFilePlaceholder(t *testing.T) {
	res := RedNote(RedNoteRequest{PromptDir: t.TempDir(), PromptFile: "a.txt", StyleFile: "b.txt"})

	require.True(t, res.Failed())
	require.Equal(t, []string{"Error loading files"}, res.Prompts)
	require.Equal(t, []string{"Error"}, res.CharacterNames)
	require.Empty(t, res.Negative)
}

func TestRedNoteStyleLockSequential(t *testing.T) {
	dir := promptDir(t, map[string]string{
		"chars.txt":  "c\n",
		"styles.txt": "styleA\nstyleB\n",
	})

	res := RedNote(RedNoteRequest{
		PromptDir:  dir,
		PromptFile: "chars.txt",
		StyleFile:  "styles.txt",
		Preset:     "none",
		Mode:       ModeSequential,
		StartIndex: 0,
		BatchSize:  4,
		StyleLock:  true,
	})

	require.False(t, res.Failed())
	for i, prompt := range res.Prompts {
		want := "styleA"
		if i%2 == 1 {
			want = "styleB"
		}
		require.Contains(t, prompt, want, "batch item %d", i)
	}
}

func TestRedNoteUnknownPresetUsesDefaultPair(t *testing.T) {
	dir := promptDir(t, map[string]string{
		"chars.txt":  "c\n",
		"styles.txt": "\n",
	})

	res := RedNote(RedNoteRequest{
		PromptDir:  dir,
		PromptFile: "chars.txt",
		StyleFile:  "styles.txt",
		Preset:     "mystery",
		Mode:       ModeSequential,
		BatchSize:  1,
		MoodLevel:  0.5,
	})

	require.False(t, res.Failed())
	// Unknown preset keys get the default suffix/negative pair, and none
	// of the RedNote enforcer blocks.
	require.True(t, strings.HasPrefix(res.Prompts[0], tagstore.QualityTags), res.Prompts[0])
	require.Contains(t, res.Prompts[0], tagstore.MoodPhrase(0.5))
	require.NotContains(t, res.Prompts[0], "(solo:1.5)")
	require.Equal(t, tagstore.StandardNegative, res.Negative)
}
