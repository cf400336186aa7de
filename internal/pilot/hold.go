package pilot

import (
	"github.com/san-kum/blendlab/internal/blend"
	"github.com/san-kum/blendlab/internal/drive"
)

// Hold is a station-keeping autopilot: each cycle it lerps its commanded
// state toward a target command and emits it with a uniform authority
// weight. Rate is the per-cycle interpolation factor; 1 snaps to the
// target immediately, values near 0 approach it slowly.
type Hold struct {
	Target    drive.Vector
	Authority float64
	Rate      float64

	current drive.Vector
}

func NewHold(target drive.Vector, authority, rate float64) *Hold {
	return &Hold{Target: target, Authority: authority, Rate: rate}
}

func (h *Hold) Name() string { return "hold" }

func (h *Hold) Sample(t float64) blend.Input[drive.Vector] {
	h.current = h.current.Lerp(h.Target, h.Rate)
	return blend.NewInput(h.current, drive.Splat(h.Authority))
}
