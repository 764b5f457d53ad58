package engine

import (
	"time"

	"github.com/katalvlaran/boolnet/basin"
	"github.com/katalvlaran/boolnet/config"
)

// Report is the outcome of one run.
type Report struct {
	RunID    string          `json:"run_id"`
	Strategy config.Strategy `json:"strategy"`
	Nodes    []string        `json:"nodes"`
	Result   basin.Result    `json:"result"`
	Activity []float64       `json:"node_activity"`
	Elapsed  time.Duration   `json:"elapsed_ns"`
}

// Unresolved returns the number of initial states with no reachable attractor.
func (r *Report) Unresolved() int { return len(r.Result.Unresolved) }
