package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/slopefield/internal/field"
)

func TestNewRect_Invalid(t *testing.T) {
	tests := []struct {
		name                   string
		xMin, xMax, yMin, yMax float64
		want                   error
	}{
		{"empty x", 1, 1, 0, 1, ErrEmptyRect},
		{"inverted y", 0, 1, 2, 1, ErrEmptyRect},
		{"NaN bound", math.NaN(), 1, 0, 1, ErrNonFinite},
		{"infinite bound", 0, math.Inf(1), 0, 1, ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRect(tt.xMin, tt.xMax, tt.yMin, tt.yMax)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, field.ErrContract) {
				t.Errorf("expected contract error, got %v", err)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r, err := NewRect(-1, 1, -2, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{-1, -2, true},
		{1, 2, true},
		{1.0000001, 0, false},
		{0, -2.1, false},
		{math.NaN(), 0, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMajorLines(t *testing.T) {
	tests := []struct {
		name          string
		lo, hi, space float64
		want          []float64
	}{
		{"exclusive bounds", -2, 2, 1, []float64{-1, 0, 1}},
		{"offset bounds", -2.5, 2.5, 1, []float64{-2, -1, 0, 1, 2}},
		{"positive range", 0.5, 3, 1, []float64{1, 2}},
		{"narrower than spacing", 0.1, 0.9, 1, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MajorLines(tt.lo, tt.hi, tt.space)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMajorLines_PiSpacing(t *testing.T) {
	lines, err := MajorLines(-8*math.Pi, 8*math.Pi, math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 15 {
		t.Errorf("expected 15 interior multiples of pi, got %d: %v", len(lines), lines)
	}
	for _, v := range lines {
		if v <= -8*math.Pi || v >= 8*math.Pi {
			t.Errorf("line %v not strictly inside bounds", v)
		}
	}
}

func TestMajorLines_BadSpacing(t *testing.T) {
	for _, s := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := MajorLines(0, 1, s); !errors.Is(err, ErrSpacing) {
			t.Errorf("spacing %v: expected ErrSpacing, got %v", s, err)
		}
	}
	if _, err := MajorLines(0, 1e9, 1e-3); !errors.Is(err, ErrTooManyLines) {
		t.Errorf("expected ErrTooManyLines, got %v", err)
	}
}
