// Package passport prepares square passport photos for US print services:
// crop, high-quality resample to a fixed target size, validation against
// the 2x2 inch print requirements, and tiling four copies onto a 4x6 sheet.
package passport

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	apperrors "github.com/promptloom/promptloom/internal/errors"
)

// Target square sizes in pixels. Keys are the stable selection contract
// exposed to hosts and the CLI.
const (
	SizePrint600 = "2x2_inch_600dpi"
	SizePrint300 = "2x2_inch_300dpi"
	SizeDigital  = "digital_only"
)

var sizes = map[string]int{
	SizePrint600: 600,
	SizePrint300: 300,
	SizeDigital:  800,
}

var sizeOrder = []string{SizePrint600, SizePrint300, SizeDigital}

// SizeNames returns the size keys in declaration order.
func SizeNames() []string {
	out := make([]string, len(sizeOrder))
	copy(out, sizeOrder)
	return out
}

// SizeFor returns the pixel edge length for a size key.
func SizeFor(key string) (int, error) {
	if px, ok := sizes[key]; ok {
		return px, nil
	}
	return 0, apperrors.NewInvalidInputError(fmt.Sprintf("invalid size %q, valid options: %s, %s, %s",
		key, SizePrint600, SizePrint300, SizeDigital))
}

// CropMode selects how a non-square source is squared before resampling.
type CropMode string

const (
	// CropCenter crops the longer axis symmetrically.
	CropCenter CropMode = "center"
	// CropTop keeps the top edge so faces near the top survive.
	CropTop CropMode = "top"
	// CropNone skips cropping; the resample then distorts aspect ratio.
	CropNone CropMode = "none"
)

// CropModes returns the valid crop modes in declaration order.
func CropModes() []CropMode {
	return []CropMode{CropCenter, CropTop, CropNone}
}

// Sheet dimensions for the tiled 4x6 inch print at 300 DPI.
const (
	sheetWidth  = 1800
	sheetHeight = 1200
	tileEdge    = 600
)

// Resize squares the source per mode, then resamples it to the target size
// with CatmullRom. Returns the result plus a human-readable info block.
func Resize(src image.Image, sizeKey string, mode CropMode) (image.Image, string, error) {
	edge, err := SizeFor(sizeKey)
	if err != nil {
		return nil, "", err
	}
	switch mode {
	case CropCenter, CropTop, CropNone:
	default:
		return nil, "", apperrors.NewInvalidInputError(fmt.Sprintf("invalid crop mode %q", mode))
	}

	bounds := src.Bounds()
	origW, origH := bounds.Dx(), bounds.Dy()
	if origW <= 0 || origH <= 0 {
		return nil, "", apperrors.NewInvalidInputError("invalid image dimensions")
	}

	squared := src
	if mode != CropNone && origW != origH {
		squared = cropSquare(src, mode)
	}

	dst := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.CatmullRom.Scale(dst, dst.Bounds(), squared, squared.Bounds(), draw.Src, nil)

	info := fmt.Sprintf("Input: %dx%d\nOutput: %dx%d (%s)\nCrop: %s\nReady for CVS/Walgreens printing",
		origW, origH, edge, edge, sizeKey, mode)
	return dst, info, nil
}

// cropSquare cuts the largest centered square; CropTop pins it to the top
// edge instead of centering vertically.
func cropSquare(src image.Image, mode CropMode) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	edge := min(w, h)

	left := bounds.Min.X + (w-edge)/2
	top := bounds.Min.Y
	if mode == CropCenter {
		top += (h - edge) / 2
	}

	rect := image.Rect(left, top, left+edge, top+edge)
	out := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.Draw(out, out.Bounds(), src, rect.Min, draw.Src)
	return out
}

// Tile places four copies of the photo on a white 1800x1200 sheet, two
// columns centered horizontally, two rows flush vertically. Sources that
// are not exactly 600x600 are resampled first.
func Tile(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() != tileEdge || bounds.Dy() != tileEdge {
		scaled := image.NewRGBA(image.Rect(0, 0, tileEdge, tileEdge))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, bounds, draw.Src, nil)
		src = scaled
	}

	sheet := image.NewRGBA(image.Rect(0, 0, sheetWidth, sheetHeight))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	marginX := (sheetWidth - 2*tileEdge) / 2
	positions := []image.Point{
		{marginX, 0},
		{marginX + tileEdge, 0},
		{marginX, tileEdge},
		{marginX + tileEdge, tileEdge},
	}
	for _, pos := range positions {
		rect := image.Rect(pos.X, pos.Y, pos.X+tileEdge, pos.Y+tileEdge)
		draw.Draw(sheet, rect, src, src.Bounds().Min, draw.Src)
	}
	return sheet
}

// Validation is the result of checking an image against US passport photo
// requirements.
type Validation struct {
	IsSquare       bool   `json:"is_square"`
	MeetsMinSize   bool   `json:"meets_min_size"`
	MeetsPrintSize bool   `json:"meets_print_size"`
	Recommendation string `json:"recommendation"`
	Dimensions     string `json:"dimensions"`
}

// Validate checks squareness and the 300px digital / 600px print minimums.
func Validate(img image.Image) Validation {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	v := Validation{
		IsSquare:       w == h,
		MeetsMinSize:   min(w, h) >= 300,
		MeetsPrintSize: min(w, h) >= 600,
		Dimensions:     fmt.Sprintf("%dx%d", w, h),
	}

	switch {
	case v.MeetsPrintSize && v.IsSquare:
		v.Recommendation = "Ready for CVS/Walgreens printing"
	case v.MeetsMinSize && v.IsSquare:
		v.Recommendation = "Suitable for digital use, may be low quality for print"
	case v.IsSquare:
		v.Recommendation = "Image too small, may appear pixelated when printed"
	default:
		v.Recommendation = "Image is not square, needs cropping"
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
