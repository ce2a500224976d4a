package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/slopefield/internal/experiment"
)

type ExportData struct {
	Equation     string       `json:"equation"`
	Label        string       `json:"label"`
	Integrator   string       `json:"integrator"`
	Step         float64      `json:"step"`
	Bounds       [4]float64   `json:"bounds"`
	Seed         [2]float64   `json:"seed"`
	Steps        int          `json:"steps"`
	BackwardStop string       `json:"backward_stop"`
	ForwardStop  string       `json:"forward_stop"`
	Points       [][2]float64 `json:"points"`
}

func NewExportData(res *experiment.Result) ExportData {
	data := ExportData{
		Equation:   res.Equation.Name,
		Label:      res.Equation.Label,
		Integrator: res.Integrator,
		Step:       res.Step,
		Bounds:     [4]float64{res.Rect.XMin, res.Rect.XMax, res.Rect.YMin, res.Rect.YMax},
		Seed:       [2]float64{res.Seed.X, res.Seed.Y},
		Points:     [][2]float64{},
	}
	if traj := res.Trajectory; traj != nil {
		data.Steps = traj.Len()
		data.BackwardStop = traj.BackwardStop.String()
		data.ForwardStop = traj.ForwardStop.String()
		data.Points = make([][2]float64, len(traj.Points))
		for i, p := range traj.Points {
			data.Points[i] = [2]float64{p.X, p.Y}
		}
	}
	return data
}

// WriteJSON writes the trajectory and run parameters of res as indented JSON.
func WriteJSON(w io.Writer, res *experiment.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(res))
}

func ExportJSON(path string, res *experiment.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, res)
}
