package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/slopefield/internal/config"
	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/field"
)

var ErrEmptyScenario = errors.New("automation: scenario has no steps")

// Scenario is a scripted sequence of renders.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep starts from the defaults, a preset or a config file and
// applies the fields that are set.
type ScenarioStep struct {
	Name       string      `yaml:"name"`
	Preset     string      `yaml:"preset"`
	Config     string      `yaml:"config"`
	Equation   string      `yaml:"equation"`
	Seed       *[2]float64 `yaml:"seed"`
	Step       float64     `yaml:"step"`
	Integrator string      `yaml:"integrator"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	SaveAs     string      `yaml:"save_as"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, ErrEmptyScenario
	}

	return &scenario, nil
}

// Resolve builds the configuration of one step.
func (s ScenarioStep) Resolve() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if s.Config != "" {
		loaded, err := config.LoadOnto(s.Config, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if s.Equation != "" {
		cfg.Equation = s.Equation
	}
	if s.Seed != nil {
		cfg.Seed = config.SeedConfig{X: s.Seed[0], Y: s.Seed[1]}
	}
	if s.Step != 0 {
		cfg.Step = s.Step
	}
	if s.Integrator != "" {
		cfg.Integrator = s.Integrator
	}
	if s.Width != 0 {
		cfg.Width = s.Width
	}
	if s.Height != 0 {
		cfg.Height = s.Height
	}
	return cfg, nil
}

// StepResult pairs a finished run with the step that produced it.
type StepResult struct {
	Step   ScenarioStep
	Result *experiment.Result
}

// RunScenario executes all steps in order. Every step is validated before
// the first one runs. onDone, if set, is called after each step.
func RunScenario(ctx context.Context, scenario *Scenario, reg *field.Registry, logger *log.Logger, onDone func(StepResult) error) ([]StepResult, error) {
	if len(scenario.Steps) == 0 {
		return nil, ErrEmptyScenario
	}
	if logger == nil {
		logger = log.Default()
	}

	configs := make([]experiment.Config, len(scenario.Steps))
	for i, step := range scenario.Steps {
		cfg, err := step.Resolve()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if configs[i], err = cfg.ToExperiment(reg); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	results := make([]StepResult, 0, len(scenario.Steps))
	for i, step := range scenario.Steps {
		logger.Info("running step", "n", fmt.Sprintf("%d/%d", i+1, len(scenario.Steps)), "name", step.Name, "equation", configs[i].Equation.Name)

		exp := experiment.New(configs[i])
		exp.SetLogger(logger)
		res, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Step: step, Result: res}
		results = append(results, sr)
		if onDone != nil {
			if err := onDone(sr); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}

	return results, nil
}
