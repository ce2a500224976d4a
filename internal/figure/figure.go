// Package figure composes a rendered run into a titled plot: the raw field
// image, major grid lines, origin axes and the seed trajectory with a legend.
package figure

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/slopefield/internal/experiment"
)

var ErrNoField = errors.New("figure: result has no field buffer")

const (
	lineWidth  = vg.Length(1.5)
	gridWidth  = vg.Length(0.5)
	axisWidth  = vg.Length(0.75)
	DefaultCm  = 16
	maxAspect  = 4.0
	minAspect  = 0.25
	legendText = 9
)

// Build lays out res on a new plot.
func Build(res *experiment.Result) (*plot.Plot, error) {
	if res.Buffer == nil {
		return nil, ErrNoField
	}
	trajColor, majorColor, originColor, err := res.Palette.Accents()
	if err != nil {
		return nil, err
	}

	r := res.Rect
	p := plot.New()
	p.Title.Text = res.Title()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = r.XMin, r.XMax
	p.Y.Min, p.Y.Max = r.YMin, r.YMax
	p.X.Tick.Marker = plot.ConstantTicks(ticks(res.XLines))
	p.Y.Tick.Marker = plot.ConstantTicks(ticks(res.YLines))

	p.Add(plotter.NewImage(res.Buffer.Image(), r.XMin, r.YMin, r.XMax, r.YMax))

	grid := plotter.NewGrid()
	grid.Vertical.Color = majorColor.RGBA()
	grid.Vertical.Width = gridWidth
	grid.Horizontal.Color = majorColor.RGBA()
	grid.Horizontal.Width = gridWidth
	p.Add(grid)

	if r.XMin < 0 && r.XMax > 0 {
		axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: r.YMin}, {X: 0, Y: r.YMax}})
		if err != nil {
			return nil, err
		}
		axis.Color = originColor.RGBA()
		axis.Width = axisWidth
		p.Add(axis)
	}
	if r.YMin < 0 && r.YMax > 0 {
		axis, err := plotter.NewLine(plotter.XYs{{X: r.XMin, Y: 0}, {X: r.XMax, Y: 0}})
		if err != nil {
			return nil, err
		}
		axis.Color = originColor.RGBA()
		axis.Width = axisWidth
		p.Add(axis)
	}

	if traj := res.Trajectory; traj != nil && traj.Len() > 0 {
		pts := make(plotter.XYs, traj.Len())
		for i, pt := range traj.Points {
			pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("trajectory: %w", err)
		}
		line.Color = trajColor.RGBA()
		line.Width = lineWidth
		p.Add(line)
		p.Legend.Add(res.SeedLabel(), line)
		p.Legend.Top = true
		p.Legend.TextStyle.Font.Size = legendText
	}

	return p, nil
}

// Size returns the canvas size for a figure of the given width, following
// the aspect ratio of the rectangle within sane limits.
func Size(res *experiment.Result, width vg.Length) (vg.Length, vg.Length) {
	aspect := res.Rect.Height() / res.Rect.Width()
	aspect = math.Max(minAspect, math.Min(maxAspect, aspect))
	return width, vg.Length(float64(width) * aspect)
}

func Save(res *experiment.Result, path string, width vg.Length) error {
	p, err := Build(res)
	if err != nil {
		return err
	}
	w, h := Size(res, width)
	return p.Save(w, h, path)
}

// WriteTo renders the figure in the given format ("png", "svg", "pdf", ...).
func WriteTo(out io.Writer, res *experiment.Result, width vg.Length, format string) error {
	p, err := Build(res)
	if err != nil {
		return err
	}
	w, h := Size(res, width)
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(out)
	return err
}

func ticks(values []float64) []plot.Tick {
	out := make([]plot.Tick, len(values))
	for i, v := range values {
		out[i] = plot.Tick{Value: v, Label: TickLabel(v)}
	}
	return out
}

// TickLabel prints integer multiples of π symbolically and anything else in
// short decimal form.
func TickLabel(v float64) string {
	if v == 0 {
		return "0"
	}
	k := v / math.Pi
	if r := math.Round(k); r != 0 && math.Abs(k-r) < 1e-9 {
		switch r {
		case 1:
			return "π"
		case -1:
			return "-π"
		}
		return fmt.Sprintf("%gπ", r)
	}
	return fmt.Sprintf("%.3g", v)
}
