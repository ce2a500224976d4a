package export

import (
	"errors"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/san-kum/slopefield/internal/raster"
)

var ErrScale = errors.New("export: scale must be at least 1")

// WritePNG encodes buf as a PNG, upscaled by an integer factor with
// nearest-neighbour sampling so every cell stays a crisp block.
func WritePNG(w io.Writer, buf *raster.PixelBuffer, scale int) error {
	if scale < 1 {
		return ErrScale
	}
	src := buf.Image()
	if scale == 1 {
		return png.Encode(w, src)
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return png.Encode(w, dst)
}

func SavePNG(path string, buf *raster.PixelBuffer, scale int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WritePNG(file, buf, scale); err != nil {
		return err
	}
	return file.Close()
}
