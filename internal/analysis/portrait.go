package analysis

import (
	"strings"

	"github.com/san-kum/slopefield/internal/grid"
	"github.com/san-kum/slopefield/internal/integrators"
)

// TrajectoryToASCII sketches points on a width x height character canvas
// spanning rect, with origin axes where visible and the seed marked.
func TrajectoryToASCII(traj *integrators.Trajectory, rect grid.Rect, width, height int) string {
	if traj == nil || traj.Len() == 0 || width < 2 || height < 2 {
		return ""
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	cell := func(x, y float64) (row, col int) {
		col = int((x - rect.XMin) / rect.Width() * float64(width-1))
		row = height - 1 - int((y-rect.YMin)/rect.Height()*float64(height-1))
		return row, col
	}
	inside := func(row, col int) bool {
		return row >= 0 && row < height && col >= 0 && col < width
	}

	if rect.XMin <= 0 && rect.XMax >= 0 {
		_, col := cell(0, rect.YMin)
		for row := 0; row < height; row++ {
			if inside(row, col) {
				canvas[row][col] = '│'
			}
		}
	}
	if rect.YMin <= 0 && rect.YMax >= 0 {
		row, _ := cell(rect.XMin, 0)
		for col := 0; col < width; col++ {
			if !inside(row, col) {
				continue
			}
			if canvas[row][col] == '│' {
				canvas[row][col] = '┼'
			} else {
				canvas[row][col] = '─'
			}
		}
	}

	for _, p := range traj.Points {
		if row, col := cell(p.X, p.Y); inside(row, col) {
			canvas[row][col] = '•'
		}
	}
	if seed, ok := traj.Seed(); ok {
		if row, col := cell(seed.X, seed.Y); inside(row, col) {
			canvas[row][col] = '◆'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
