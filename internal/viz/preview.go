package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/slopefield/internal/raster"
)

// Preview draws buf at most cols characters wide using upper half blocks,
// two pixel rows per line. Rows and columns are sampled nearest-neighbour.
func Preview(buf *raster.PixelBuffer, cols int) string {
	if buf == nil || buf.Width == 0 || buf.Height == 0 || cols <= 0 {
		return ""
	}

	cols = min(cols, buf.Width)
	rows := buf.Height * cols / buf.Width
	rows = max(2, rows+rows%2)

	sample := func(c, r int) lipgloss.Color {
		x := c * buf.Width / cols
		y := min(buf.Height-1, r*buf.Height/rows)
		return lipgloss.Color(buf.At(x, y).Hex())
	}

	var sb strings.Builder
	for r := 0; r < rows; r += 2 {
		for c := 0; c < cols; c++ {
			cell := lipgloss.NewStyle().
				Foreground(sample(c, r)).
				Background(sample(c, r+1))
			sb.WriteString(cell.Render("▀"))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
