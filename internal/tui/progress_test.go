package tui

import (
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/slopefield/internal/colormap"
	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/grid"
	"github.com/san-kum/slopefield/internal/integrators"
)

func TestModelUpdate(t *testing.T) {
	canceled := false
	var m tea.Model = newModel("test", func() { canceled = true })

	m, _ = m.Update(progressMsg{done: 3, total: 10})
	if got := m.(model).percent(); got != 0.3 {
		t.Errorf("got percent %g, want 0.3", got)
	}

	// progress never moves backwards
	m, _ = m.Update(progressMsg{done: 2, total: 10})
	if got := m.(model).done; got != 3 {
		t.Errorf("got done %d, want 3", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !canceled || !m.(model).aborted {
		t.Error("q should cancel the run")
	}
	if !strings.Contains(m.View(), "canceling") {
		t.Errorf("view should report cancellation:\n%s", m.View())
	}

	m, cmd := m.Update(doneMsg{err: context.Canceled})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("done should quit the program")
	}
	if !errors.Is(m.(model).err, context.Canceled) {
		t.Errorf("got err %v", m.(model).err)
	}
}

func TestRunWithProgress(t *testing.T) {
	rect, err := grid.NewRect(-math.Pi, math.Pi, -math.Pi, math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	eq, err := field.NewRegistry().Get("default")
	if err != nil {
		t.Fatal(err)
	}
	exp := experiment.New(experiment.Config{
		Equation:     eq,
		Rect:         rect,
		Width:        16,
		Height:       16,
		MajorSpacing: 1,
		Palette:      colormap.DefaultPalette(),
		Compression:  "atan",
		Integrator:   "euler",
		Seed:         integrators.Point{X: 1, Y: 1},
		Step:         0.01,
		MaxSteps:     500,
	})

	res, err := RunWithProgress(context.Background(), exp, nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || res.Buffer == nil || !res.Buffer.Complete() {
		t.Fatal("expected a complete field")
	}
}
