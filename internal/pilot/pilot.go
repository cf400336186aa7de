package pilot

import (
	"github.com/san-kum/blendlab/internal/blend"
	"github.com/san-kum/blendlab/internal/drive"
)

// Pilot samples one weighted drive command at cycle time t.
type Pilot interface {
	Name() string
	Sample(t float64) blend.Input[drive.Vector]
}

// Bind adapts a Pilot and a time source into a deferred blend source.
// The clock is read when the blend is evaluated, so every pilot bound to
// the same clock samples the same instant.
func Bind(p Pilot, now func() float64) blend.Source[drive.Vector] {
	return func() blend.Input[drive.Vector] {
		return p.Sample(now())
	}
}
