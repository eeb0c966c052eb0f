package export

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/step"
)

type StepData struct {
	Index      int             `json:"index"`
	Kind       string          `json:"kind"`
	State      step.Structure  `json:"state"`
	Highlights step.Highlights `json:"highlights"`
	Message    string          `json:"message"`
	Error      string          `json:"error,omitempty"`
}

type ExportData struct {
	ID        string          `json:"id"`
	Family    string          `json:"family"`
	Op        string          `json:"op"`
	Operands  algo.Operands   `json:"operands"`
	CreatedAt time.Time       `json:"created_at"`
	Metrics   []metrics.Value `json:"metrics"`
	Steps     []StepData      `json:"steps"`
}

// NewExportData snapshots a generated sequence under a fresh run id.
func NewExportData(family, op string, ops algo.Operands, seq step.Sequence) *ExportData {
	data := &ExportData{
		ID:        uuid.NewString(),
		Family:    family,
		Op:        op,
		Operands:  ops,
		CreatedAt: time.Now().UTC(),
		Metrics:   metrics.Collect(seq),
		Steps:     make([]StepData, len(seq)),
	}
	for i, s := range seq {
		sd := StepData{
			Index:      i,
			State:      s.State,
			Highlights: s.Highlights,
			Message:    s.Message,
		}
		if s.State != nil {
			sd.Kind = s.State.Kind()
		}
		if s.Err != nil {
			sd.Error = s.Err.Error()
		}
		data.Steps[i] = sd
	}
	return data
}

func WriteJSON(w io.Writer, data *ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, data *ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, data)
}
