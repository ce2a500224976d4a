package analysis

import (
	"math"

	"github.com/san-kum/slopefield/internal/integrators"
)

type Summary struct {
	Points     int
	XMin, XMax float64
	YMin, YMax float64
	ArcLength  float64
}

func Summarize(points []integrators.Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	s := Summary{
		Points: len(points),
		XMin:   points[0].X, XMax: points[0].X,
		YMin: points[0].Y, YMax: points[0].Y,
	}
	for i, p := range points {
		s.XMin = math.Min(s.XMin, p.X)
		s.XMax = math.Max(s.XMax, p.X)
		s.YMin = math.Min(s.YMin, p.Y)
		s.YMax = math.Max(s.YMax, p.Y)
		if i > 0 {
			prev := points[i-1]
			s.ArcLength += math.Hypot(p.X-prev.X, p.Y-prev.Y)
		}
	}
	return s
}
