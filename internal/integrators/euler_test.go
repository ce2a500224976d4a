package integrators

import (
	"errors"
	"testing"

	"github.com/san-kum/slopefield/internal/field"
)

func TestEulerStep(t *testing.T) {
	eq, _ := field.NewRegistry().Get("linear")

	got, ok := NewEuler().Step(eq, Point{X: 0, Y: 1}, 0.5)
	if !ok {
		t.Fatal("unexpected undefined slope")
	}
	if got != (Point{X: 0.5, Y: 1.5}) {
		t.Errorf("step = %v, want (0.5, 1.5)", got)
	}

	got, _ = NewEuler().Step(eq, Point{X: 0, Y: 1}, -0.5)
	if got != (Point{X: -0.5, Y: 0.5}) {
		t.Errorf("backward step = %v, want (-0.5, 0.5)", got)
	}
}

func TestEulerStep_Undefined(t *testing.T) {
	eq, _ := field.NewRegistry().Get("rational")
	p := Point{X: 1, Y: 0}

	got, ok := NewEuler().Step(eq, p, 0.1)
	if ok {
		t.Error("expected undefined slope at y=0")
	}
	if got != p {
		t.Errorf("failed step moved the point to %v", got)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "euler"},
		{"euler", "euler"},
		{"rk4", "rk4"},
	}
	for _, tt := range tests {
		s, err := ByName(tt.name)
		if err != nil {
			t.Errorf("%q: %v", tt.name, err)
			continue
		}
		if s.Name() != tt.want {
			t.Errorf("ByName(%q).Name() = %s, want %s", tt.name, s.Name(), tt.want)
		}
	}

	if _, err := ByName("rk45"); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
}
