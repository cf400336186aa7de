package pilot

import (
	"github.com/san-kum/blendlab/internal/blend"
	"github.com/san-kum/blendlab/internal/drive"
)

// Damper opposes the previous cycle's blended output with a negative
// weight, smoothing cycle-to-cycle swings. It observes the loop output
// as a loop.Observer; until the first observation it emits a muted
// contribution.
type Damper struct {
	Gain float64

	last drive.Vector
	seen bool
}

func NewDamper(gain float64) *Damper {
	return &Damper{Gain: gain}
}

func (d *Damper) Name() string { return "damper" }

// OnCycle records the blended output the loop just committed.
func (d *Damper) OnCycle(out drive.Vector, t float64) {
	d.last = out
	d.seen = true
}

func (d *Damper) Sample(t float64) blend.Input[drive.Vector] {
	if !d.seen {
		return blend.NewInput(drive.Zero, drive.Zero)
	}
	return blend.NewInput(d.last, drive.Splat(-d.Gain))
}
