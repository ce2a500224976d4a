package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/slopefield/internal/grid"
	"github.com/san-kum/slopefield/internal/integrators"
)

// TrajectoryToSVG draws the trajectory as a single path over the fixed
// extent of rect, so the output lines up with a rendered field of the same
// rectangle. Returns "" when there is nothing to draw.
func TrajectoryToSVG(traj *integrators.Trajectory, rect grid.Rect, width, height int, strokeColor string) string {
	if traj == nil || traj.Len() < 2 || width <= 0 || height <= 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// axes through the origin when it is visible
	if rect.XMin < 0 && rect.XMax > 0 {
		x, _ := project(rect, width, height, 0, rect.YMin)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#ffffff" stroke-width="0.5"/>
`, x, x, height))
	}
	if rect.YMin < 0 && rect.YMax > 0 {
		_, y := project(rect, width, height, rect.XMin, 0)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#ffffff" stroke-width="0.5"/>
`, y, width, y))
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i, p := range traj.Points {
		x, y := project(rect, width, height, p.X, p.Y)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func project(rect grid.Rect, width, height int, x, y float64) (float64, float64) {
	px := (x - rect.XMin) / rect.Width() * float64(width)
	py := float64(height) - (y-rect.YMin)/rect.Height()*float64(height)
	return px, py
}
