// Package export writes built models to disk for downstream tooling.
package export

import (
	"encoding/json"
	"os"

	"github.com/san-kum/symdyn/internal/expr"
	"github.com/san-kum/symdyn/internal/model"
)

// EquationData is one rendered state equation.
type EquationData struct {
	State      string `json:"state"`
	Derivative string `json:"derivative"`
}

// ExportData is the JSON description of a built model: the rendered ODE
// system plus any scalar companions (energy, potential) by name.
type ExportData struct {
	Model     string            `json:"model"`
	StateDim  int               `json:"state_dim"`
	Equations []EquationData    `json:"equations"`
	Scalars   map[string]string `json:"scalars,omitempty"`
}

// ExportJSON writes the system and scalar expressions to path.
func ExportJSON(path, modelName string, sys model.System, scalars map[string]expr.Expr) error {
	data := ExportData{
		Model:     modelName,
		StateDim:  sys.StateDim(),
		Equations: make([]EquationData, 0, len(sys)),
	}
	for _, eq := range sys {
		data.Equations = append(data.Equations, EquationData{
			State:      eq.State.Name(),
			Derivative: eq.RHS.String(),
		})
	}
	if len(scalars) > 0 {
		data.Scalars = make(map[string]string, len(scalars))
		for name, e := range scalars {
			data.Scalars[name] = e.String()
		}
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0644)
}
