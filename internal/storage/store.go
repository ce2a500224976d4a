package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/export"
	"github.com/san-kum/slopefield/internal/integrators"
)

const (
	metadataFile   = "metadata.json"
	trajectoryFile = "trajectory.csv"
	fieldFile      = "field.png"
)

var ErrNoTrajectory = errors.New("storage: run has no trajectory")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

type RunMetadata struct {
	ID           string     `json:"id"`
	Equation     string     `json:"equation"`
	Label        string     `json:"label"`
	Timestamp    time.Time  `json:"timestamp"`
	Bounds       [4]float64 `json:"bounds"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Seed         [2]float64 `json:"seed"`
	Step         float64    `json:"step"`
	Integrator   string     `json:"integrator"`
	Steps        int        `json:"steps"`
	Backward     int        `json:"backward"`
	Forward      int        `json:"forward"`
	BackwardStop string     `json:"backward_stop"`
	ForwardStop  string     `json:"forward_stop"`
	ElapsedMS    float64    `json:"elapsed_ms"`
}

// Save writes res into a fresh run directory and returns its id.
func (s *Store) Save(res *experiment.Result) (string, error) {
	now := s.now()
	runID := fmt.Sprintf("%s_%d", res.Equation.Name, now.UnixNano())
	runDir := s.Dir(runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Equation:   res.Equation.Name,
		Label:      res.Equation.Label,
		Timestamp:  now,
		Bounds:     [4]float64{res.Rect.XMin, res.Rect.XMax, res.Rect.YMin, res.Rect.YMax},
		Seed:       [2]float64{res.Seed.X, res.Seed.Y},
		Step:       res.Step,
		Integrator: res.Integrator,
		ElapsedMS:  float64(res.Elapsed.Microseconds()) / 1000,
	}
	if res.Buffer != nil {
		meta.Width, meta.Height = res.Buffer.Width, res.Buffer.Height
	}
	if traj := res.Trajectory; traj != nil {
		meta.Steps = traj.Len()
		meta.Backward = traj.Backward
		meta.Forward = traj.Forward
		meta.BackwardStop = traj.BackwardStop.String()
		meta.ForwardStop = traj.ForwardStop.String()
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	if res.Trajectory != nil {
		if err := writeTrajectory(filepath.Join(runDir, trajectoryFile), res.Trajectory); err != nil {
			return "", err
		}
	}

	if res.Buffer != nil {
		if err := export.SavePNG(filepath.Join(runDir, fieldFile), res.Buffer, 1); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTrajectory(path string, traj *integrators.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range traj.Points {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the metadata of every stored run, oldest first. Directories
// without readable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(runID), metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) ([]integrators.Point, error) {
	file, err := os.Open(filepath.Join(s.Dir(runID), trajectoryFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoTrajectory
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(records) < 2 {
		return []integrators.Point{}, nil
	}

	points := make([]integrators.Point, 0, len(records)-1)
	for i, record := range records[1:] {
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s row %d: %w", runID, i+1, err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s row %d: %w", runID, i+1, err)
		}
		points = append(points, integrators.Point{X: x, Y: y})
	}

	return points, nil
}
