package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/integrators"
)

// Summary renders the headline numbers of a run in a bordered panel.
func Summary(res *experiment.Result) string {
	rows := [][2]string{
		{"equation", res.Equation.Label},
		{"bounds", res.Rect.String()},
		{"seed", res.Seed.String()},
		{"integrator", fmt.Sprintf("%s, h=%g", res.Integrator, res.Step)},
	}
	if res.Buffer != nil {
		rows = append(rows, [2]string{"field", fmt.Sprintf("%dx%d in %s", res.Buffer.Width, res.Buffer.Height, round(res.RasterTime))})
	}
	if traj := res.Trajectory; traj != nil {
		rows = append(rows,
			[2]string{"trajectory", fmt.Sprintf("%d points in %s", traj.Len(), round(res.TraceTime))},
			[2]string{"backward", stopLabel(traj.Backward, traj.BackwardStop)},
			[2]string{"forward", stopLabel(traj.Forward, traj.ForwardStop)},
		)
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}

	var sb strings.Builder
	sb.WriteString(Title.Render(res.Title()))
	sb.WriteString("\n\n")
	for i, r := range rows {
		label := MetricLabel.Render(fmt.Sprintf("%-*s", width, r[0]))
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, "  ", MetricValue.Render(r[1])))
		if i < len(rows)-1 {
			sb.WriteRune('\n')
		}
	}
	return Panel.Render(sb.String())
}

func stopLabel(steps int, reason integrators.StopReason) string {
	status := StatusOK
	if reason == integrators.StopUndefined || reason == integrators.StopCanceled {
		status = StatusWarn
	}
	return fmt.Sprintf("%d steps, %s", steps, status.Render(reason.String()))
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		return d.Round(time.Millisecond)
	case d > time.Millisecond:
		return d.Round(time.Microsecond)
	}
	return d
}
