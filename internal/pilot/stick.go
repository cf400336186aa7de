package pilot

import (
	"math"

	"github.com/san-kum/blendlab/internal/blend"
	"github.com/san-kum/blendlab/internal/drive"
)

// Stick is a synthetic operator joystick: field-relative translation
// traces a circle of the given amplitude over one period, with a slower
// rotation sweep on top. It stands in for a live gamepad in demos and
// soak runs.
type Stick struct {
	Amplitude float64 // peak stick deflection
	Period    float64 // seconds per translation circle
	Weight    float64 // authority on the driven fields
}

func NewStick(amplitude, period, weight float64) *Stick {
	return &Stick{Amplitude: amplitude, Period: period, Weight: weight}
}

func (s *Stick) Name() string { return "stick" }

// Sample returns the stick deflection at time t. Only field-relative
// translation and rotation carry weight; robot-relative fields stay
// muted so a robot-frame pilot can own them.
func (s *Stick) Sample(t float64) blend.Input[drive.Vector] {
	phase := 2 * math.Pi * t / s.Period

	control := drive.Vector{
		FieldX:   s.Amplitude * math.Sin(phase),
		FieldY:   s.Amplitude * math.Cos(phase),
		Rotation: 0.5 * s.Amplitude * math.Sin(phase/2),
	}
	weight := drive.Vector{
		FieldX:   s.Weight,
		FieldY:   s.Weight,
		Rotation: s.Weight,
	}
	return blend.NewInput(control, weight)
}
