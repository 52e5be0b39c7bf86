package passport

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/promptloom/promptloom/internal/errors"
)

// fill paints a solid color so crop position is observable.
func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func TestResizeCenterCropLandscape(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1000, 800))
	fill(src, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	out, info, err := Resize(src, SizePrint600, CropCenter)
	require.NoError(t, err)
	require.Equal(t, 600, out.Bounds().Dx())
	require.Equal(t, 600, out.Bounds().Dy())
	require.Contains(t, info, "Input: 1000x800")
	require.Contains(t, info, "Output: 600x600 (2x2_inch_600dpi)")
	require.Contains(t, info, "Crop: center")
}

func TestResizeTopCropKeepsTopPixels(t *testing.T) {
	// Top half red, bottom half blue. A top crop of a 100x200 portrait
	// keeps only the red region.
	src := image.NewRGBA(image.Rect(0, 0, 100, 200))
	fill(src, color.RGBA{B: 255, A: 255})
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	out, _, err := Resize(src, SizePrint300, CropTop)
	require.NoError(t, err)

	r, _, b, _ := out.At(150, 150).RGBA()
	require.Greater(t, r, b, "top crop should keep the red top half")
}

func TestResizeNoCropStretches(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))

	out, _, err := Resize(src, SizeDigital, CropNone)
	require.NoError(t, err)
	require.Equal(t, 800, out.Bounds().Dx())
	require.Equal(t, 800, out.Bounds().Dy())
}

func TestResizeRejectsBadInputs(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))

	_, _, err := Resize(src, "4x6_poster", CropCenter)
	require.Error(t, err)
	require.Equal(t, apperrors.CodeInvalidInput, apperrors.CodeOf(err))

	_, _, err = Resize(src, SizePrint600, CropMode("diagonal"))
	require.Error(t, err)
}

func TestTileLayout(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 600, 600))
	fill(src, color.RGBA{G: 255, A: 255})

	sheet := Tile(src)
	require.Equal(t, 1800, sheet.Bounds().Dx())
	require.Equal(t, 1200, sheet.Bounds().Dy())

	// Photo corners land at the four tile positions.
	for _, p := range []image.Point{{300, 0}, {900, 0}, {300, 600}, {900, 600}} {
		_, g, _, _ := sheet.At(p.X+10, p.Y+10).RGBA()
		require.NotZero(t, g, "expected photo pixel at %v", p)
	}

	// Margins stay white.
	r, g, b, _ := sheet.At(10, 10).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0xffff), g)
	require.Equal(t, uint32(0xffff), b)
}

func TestTileResizesOddSource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 731, 731))
	sheet := Tile(src)
	require.Equal(t, 1800, sheet.Bounds().Dx())
	require.Equal(t, 1200, sheet.Bounds().Dy())
}

func TestValidateDecisionTable(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		want string
	}{
		{"print ready", 600, 600, "Ready for CVS/Walgreens printing"},
		{"digital only", 300, 300, "Suitable for digital use"},
		{"too small", 200, 200, "too small"},
		{"not square", 1000, 800, "not square"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Validate(image.NewRGBA(image.Rect(0, 0, tc.w, tc.h)))
			require.Contains(t, v.Recommendation, tc.want)
			require.Equal(t, tc.w == tc.h, v.IsSquare)
		})
	}

	v := Validate(image.NewRGBA(image.Rect(0, 0, 800, 800)))
	require.True(t, v.MeetsPrintSize)
	require.Equal(t, "800x800", v.Dimensions)
}

func TestTensorRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 0, color.RGBA{G: 128, A: 255})
	src.SetRGBA(2, 1, color.RGBA{B: 64, A: 255})

	ten := ToTensor(src)
	require.Equal(t, 2, ten.Height)
	require.Equal(t, 3, ten.Width)
	require.Len(t, ten.Data, 2*3*3)
	require.InDelta(t, 1.0, ten.Data[0], 0.001)

	back, err := ten.FromTensor()
	require.NoError(t, err)
	r, _, _, _ := back.At(0, 0).RGBA()
	require.Equal(t, uint32(0xffff), r)
}

func TestFromTensorRejectsShapeMismatch(t *testing.T) {
	_, err := Tensor{Height: 2, Width: 2, Data: make([]float32, 5)}.FromTensor()
	require.Error(t, err)
	require.Equal(t, apperrors.CodeInvalidInput, apperrors.CodeOf(err))

	_, err = Tensor{}.FromTensor()
	require.Error(t, err)
}

func TestFromTensorClampsRange(t *testing.T) {
	ten := Tensor{Height: 1, Width: 1, Data: []float32{1.5, -0.5, 0.5}}
	img, err := ten.FromTensor()
	require.NoError(t, err)

	r, g, b, _ := img.At(0, 0).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0), g)
	require.InDelta(t, 0x8080, int(b), 0x200)
}

func TestPromptResolution(t *testing.T) {
	p, n := Prompt(true, "", "")
	require.Equal(t, DefaultPrompt, p)
	require.Empty(t, n)

	p, _ = Prompt(true, "", "soft smile")
	require.True(t, strings.HasSuffix(p, ", soft smile"))
	require.True(t, strings.HasPrefix(p, DefaultPrompt))

	p, n = Prompt(false, "  studio headshot  ", "ignored")
	require.Equal(t, "studio headshot", p)
	require.Empty(t, n)

	// Custom only wins when non-empty.
	p, _ = Prompt(false, "   ", "extra")
	require.True(t, strings.HasPrefix(p, DefaultPrompt))
	require.True(t, strings.HasSuffix(p, ", extra"))
}
