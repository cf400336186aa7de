package metrics

import (
	"math"

	"github.com/san-kum/blendlab/internal/drive"
)

// Saturation tracks the fraction of cycles where any output field
// exceeds the configured limit. Weights past 1 or stacked sources can
// push the blend beyond what actuators accept; this measures how often.
type Saturation struct {
	name      string
	limit     float64
	saturated int
	samples   int
}

func NewSaturation(limit float64) *Saturation {
	return &Saturation{name: "saturation", limit: limit}
}

func (s *Saturation) Name() string {
	return s.name
}

func (s *Saturation) Observe(out drive.Vector, t float64) {
	s.samples++
	for _, f := range out.Fields() {
		if math.Abs(f) > s.limit {
			s.saturated++
			return
		}
	}
}

func (s *Saturation) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.saturated) / float64(s.samples)
}

func (s *Saturation) Reset() {
	s.saturated = 0
	s.samples = 0
}
