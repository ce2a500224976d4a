// Package tui shows a live progress view while a run rasterizes.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/viz"
)

const barWidth = 40

type progressMsg struct{ done, total int }

type doneMsg struct {
	res *experiment.Result
	err error
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	title   string
	done    int
	total   int
	frame   int
	start   time.Time
	cancel  context.CancelFunc
	result  *experiment.Result
	err     error
	aborted bool
}

func newModel(title string, cancel context.CancelFunc) model {
	return model{title: title, cancel: cancel, start: time.Now()}
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.aborted = true
			m.cancel()
		}
		return m, nil
	case progressMsg:
		if msg.done > m.done {
			m.done = msg.done
		}
		m.total = msg.total
		return m, nil
	case tickMsg:
		m.frame++
		return m, tick()
	case doneMsg:
		m.result, m.err = msg.res, msg.err
		if m.total > 0 {
			m.done = m.total
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m model) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(viz.Title.Render(m.title))
	sb.WriteString("\n\n")

	status := viz.Spinner(m.frame)
	if m.result != nil || m.err != nil {
		status = "✓"
	}
	sb.WriteString(fmt.Sprintf("%s %s %5.1f%%  %s\n",
		status,
		viz.ProgressBar(m.percent(), barWidth),
		100*m.percent(),
		viz.Subtle.Render(fmt.Sprintf("%d/%d rows  %s", m.done, m.total, time.Since(m.start).Round(100*time.Millisecond))),
	))

	if m.aborted && m.result == nil && m.err == nil {
		sb.WriteString(viz.StatusWarn.Render("canceling...") + "\n")
	} else {
		sb.WriteString(viz.KeyHint.Render("q to cancel") + "\n")
	}
	return sb.String()
}

// RunWithProgress runs exp while drawing a progress bar to out. Pressing q
// cancels the run; the error is then the context's.
func RunWithProgress(ctx context.Context, exp *experiment.Experiment, in io.Reader, out io.Writer) (*experiment.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := []tea.ProgramOption{tea.WithOutput(out), tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	} else {
		opts = append(opts, tea.WithInput(nil))
	}

	title := "Rendering " + exp.Config().Equation.Label
	p := tea.NewProgram(newModel(title, cancel), opts...)

	exp.SetProgress(func(done, total int) {
		p.Send(progressMsg{done: done, total: total})
	})
	defer exp.SetProgress(nil)

	go func() {
		res, err := exp.Run(ctx)
		p.Send(doneMsg{res: res, err: err})
	}()

	final, err := p.Run()
	if err != nil && final == nil {
		return nil, err
	}
	m, ok := final.(model)
	if !ok {
		return nil, fmt.Errorf("tui: unexpected model %T", final)
	}
	if m.result == nil && m.err == nil {
		// the program stopped before the run reported back
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return m.result, m.err
}
