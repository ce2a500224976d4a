package raster

import (
	"image"

	"github.com/san-kum/slopefield/internal/colormap"
)

// PixelBuffer is a row-major width x height grid of colors. Row 0 holds the
// largest y sample.
type PixelBuffer struct {
	Width, Height int
	Pix           []colormap.RGB
	assigned      []bool
}

func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:    width,
		Height:   height,
		Pix:      make([]colormap.RGB, width*height),
		assigned: make([]bool, width*height),
	}
}

func (b *PixelBuffer) At(x, y int) colormap.RGB {
	return b.Pix[y*b.Width+x]
}

func (b *PixelBuffer) Set(x, y int, c colormap.RGB) {
	i := y*b.Width + x
	b.Pix[i] = c
	b.assigned[i] = true
}

func (b *PixelBuffer) Assigned(x, y int) bool {
	return b.assigned[y*b.Width+x]
}

// Complete reports whether every cell has been written.
func (b *PixelBuffer) Complete() bool {
	for _, ok := range b.assigned {
		if !ok {
			return false
		}
	}
	return true
}

func (b *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		row := b.Pix[y*b.Width : (y+1)*b.Width]
		off := y * img.Stride
		for x, c := range row {
			img.Pix[off+4*x] = c.R
			img.Pix[off+4*x+1] = c.G
			img.Pix[off+4*x+2] = c.B
			img.Pix[off+4*x+3] = 255
		}
	}
	return img
}
