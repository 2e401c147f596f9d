package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/threebody/internal/sim"
)

type BodyTrack struct {
	Role string       `json:"role"`
	Mass float64      `json:"mass"`
	X    []float64    `json:"x"`
	Y    []float64    `json:"y"`
	V    [][2]float64 `json:"v"`
}

type TrajectoryData struct {
	Integrator string             `json:"integrator"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	Bodies     []BodyTrack        `json:"bodies"`
	Metrics    map[string]float64 `json:"metrics"`
}

// NewTrajectoryData lays a run out per body so each coordinate is one
// array, which is what plotting tools expect. Non-finite samples end the
// export, since JSON cannot encode them.
func NewTrajectoryData(integrator string, dt float64, result *sim.Result) TrajectoryData {
	data := TrajectoryData{
		Integrator: integrator,
		Dt:         dt,
		Metrics:    result.Metrics,
		Bodies:     make([]BodyTrack, 0, 3),
	}

	n := len(result.States)
	for i, b := range result.States {
		if !b.IsValid() {
			n = i
			break
		}
	}
	data.Steps = n
	data.Times = result.Times[:n]

	if n == 0 {
		return data
	}
	for j, body := range result.States[0] {
		track := BodyTrack{
			Role: body.Role.String(),
			Mass: body.Mass,
			X:    make([]float64, n),
			Y:    make([]float64, n),
			V:    make([][2]float64, n),
		}
		for i := 0; i < n; i++ {
			b := result.States[i][j]
			track.X[i] = b.Position.X
			track.Y[i] = b.Position.Y
			track.V[i] = [2]float64{b.Velocity.X, b.Velocity.Y}
		}
		data.Bodies = append(data.Bodies, track)
	}
	return data
}

func ExportJSON(w io.Writer, data TrajectoryData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
