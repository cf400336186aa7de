// Package metrics provides statistics over blended drive outputs,
// implementing the loop.Metric interface.
package metrics

import (
	"math"

	"github.com/san-kum/blendlab/internal/drive"
)

// Effort tracks the mean absolute field magnitude of the blended output,
// a proxy for actuator demand.
type Effort struct {
	name    string
	sum     float64
	samples int
}

func NewEffort() *Effort {
	return &Effort{name: "effort"}
}

func (e *Effort) Name() string {
	return e.name
}

func (e *Effort) Observe(out drive.Vector, t float64) {
	for _, f := range out.Fields() {
		e.sum += math.Abs(f)
	}
	e.samples++
}

func (e *Effort) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

func (e *Effort) Reset() {
	e.sum = 0
	e.samples = 0
}
