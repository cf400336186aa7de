package metrics

import (
	"math"

	"github.com/san-kum/blendlab/internal/drive"
)

// Smoothness tracks the mean absolute cycle-to-cycle change across all
// output fields. Lower is smoother.
type Smoothness struct {
	name    string
	sum     float64
	deltas  int
	prev    drive.Vector
	hasPrev bool
}

func NewSmoothness() *Smoothness {
	return &Smoothness{name: "smoothness"}
}

func (s *Smoothness) Name() string {
	return s.name
}

func (s *Smoothness) Observe(out drive.Vector, t float64) {
	if s.hasPrev {
		prev := s.prev.Fields()
		for i, f := range out.Fields() {
			s.sum += math.Abs(f - prev[i])
		}
		s.deltas++
	}
	s.prev = out
	s.hasPrev = true
}

func (s *Smoothness) Value() float64 {
	if s.deltas == 0 {
		return 0
	}
	return s.sum / float64(s.deltas)
}

func (s *Smoothness) Reset() {
	s.sum = 0
	s.deltas = 0
	s.hasPrev = false
}
