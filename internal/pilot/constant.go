package pilot

import (
	"github.com/san-kum/blendlab/internal/blend"
	"github.com/san-kum/blendlab/internal/drive"
)

// Constant emits a fixed command with a fixed weight. Used for manual
// overrides and as a test fixture.
type Constant struct {
	control drive.Vector
	weight  drive.Vector
}

func NewConstant(control, weight drive.Vector) *Constant {
	return &Constant{control: control, weight: weight}
}

func (c *Constant) Name() string { return "constant" }

// Set replaces the emitted command.
func (c *Constant) Set(control drive.Vector) { c.control = control }

// SetWeight replaces the emitted weight.
func (c *Constant) SetWeight(weight drive.Vector) { c.weight = weight }

func (c *Constant) Sample(t float64) blend.Input[drive.Vector] {
	return blend.NewInput(c.control, c.weight)
}
