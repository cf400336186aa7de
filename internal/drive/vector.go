// Package drive provides the control state for a holonomic drive base:
// field-relative translation, robot-relative translation, and rotation.
// Vector implements [blend.Blendable] so drive commands can be blended.
package drive

import (
	"math"

	"github.com/san-kum/blendlab/internal/blend"
)

// Vector is one drive command. Translation fields are split into a
// field-relative pair and a robot-relative pair so different sources can
// command either frame; the consumer resolves the frames downstream.
type Vector struct {
	FieldX   float64
	FieldY   float64
	RobotX   float64
	RobotY   float64
	Rotation float64
}

var (
	// Zero commands no motion and, used as a weight, mutes every field.
	Zero = Vector{}

	// Ones passes every field through unchanged when used as a weight.
	Ones = Vector{1, 1, 1, 1, 1}
)

var _ blend.Blendable[Vector] = Vector{}

// Splat returns a Vector with every field set to v.
func Splat(v float64) Vector {
	return Vector{v, v, v, v, v}
}

// Add returns the field-wise sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{
		FieldX:   v.FieldX + other.FieldX,
		FieldY:   v.FieldY + other.FieldY,
		RobotX:   v.RobotX + other.RobotX,
		RobotY:   v.RobotY + other.RobotY,
		Rotation: v.Rotation + other.Rotation,
	}
}

// Mul returns the field-wise product of v and other.
func (v Vector) Mul(other Vector) Vector {
	return Vector{
		FieldX:   v.FieldX * other.FieldX,
		FieldY:   v.FieldY * other.FieldY,
		RobotX:   v.RobotX * other.RobotX,
		RobotY:   v.RobotY * other.RobotY,
		Rotation: v.Rotation * other.Rotation,
	}
}

// Lerp interpolates each field of v toward other by t. Values of t
// outside [0,1] extrapolate.
func (v Vector) Lerp(other Vector, t float64) Vector {
	return Vector{
		FieldX:   blend.Lerp(v.FieldX, other.FieldX, t),
		FieldY:   blend.Lerp(v.FieldY, other.FieldY, t),
		RobotX:   blend.Lerp(v.RobotX, other.RobotX, t),
		RobotY:   blend.Lerp(v.RobotY, other.RobotY, t),
		Rotation: blend.Lerp(v.Rotation, other.Rotation, t),
	}
}

// Scale multiplies every field by k.
func (v Vector) Scale(k float64) Vector {
	return v.Mul(Splat(k))
}

// Fields returns the field values in label order, for export and plotting.
func (v Vector) Fields() []float64 {
	return []float64{v.FieldX, v.FieldY, v.RobotX, v.RobotY, v.Rotation}
}

// IsValid reports whether every field is finite. The blend core never
// calls this; it exists for callers that validate commands before
// handing them to actuators.
func (v Vector) IsValid() bool {
	for _, f := range v.Fields() {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Labels returns the field names in the same order as Fields.
func Labels() []string {
	return []string{"field_x", "field_y", "robot_x", "robot_y", "rotation"}
}
