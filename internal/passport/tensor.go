package passport

import (
	"fmt"
	"image"
	"image/color"

	apperrors "github.com/promptloom/promptloom/internal/errors"
)

// Tensor is the host-graph image interchange format: a single-image batch
// of shape (1, H, W, 3), float32 channel values in [0, 1], row-major.
type Tensor struct {
	Height int       `json:"height"`
	Width  int       `json:"width"`
	Data   []float32 `json:"data"`
}

// ToTensor converts an image into the interchange layout.
func ToTensor(img image.Image) Tensor {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	data := make([]float32, 0, h*w*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			data = append(data,
				float32(r)/65535.0,
				float32(g)/65535.0,
				float32(b)/65535.0,
			)
		}
	}
	return Tensor{Height: h, Width: w, Data: data}
}

// FromTensor converts the interchange layout back into an image. Values
// outside [0, 1] are clamped.
func (t Tensor) FromTensor() (image.Image, error) {
	if t.Height <= 0 || t.Width <= 0 {
		return nil, apperrors.NewInvalidInputError("tensor has empty dimensions")
	}
	if want := t.Height * t.Width * 3; len(t.Data) != want {
		return nil, apperrors.NewInvalidInputError(
			fmt.Sprintf("tensor data length %d does not match %dx%dx3=%d", len(t.Data), t.Height, t.Width, want))
	}

	img := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	i := 0
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: clampByte(t.Data[i]),
				G: clampByte(t.Data[i+1]),
				B: clampByte(t.Data[i+2]),
				A: 255,
			})
			i += 3
		}
	}
	return img, nil
}

func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
