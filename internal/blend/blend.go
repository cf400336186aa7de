package blend

// Blendable is the arithmetic capability a control state type must provide
// to participate in blending. Every operation is defined field-wise: the
// implementation applies the scalar operation to each of its fields in
// turn and returns a new value of the same type.
type Blendable[T any] interface {
	// Add returns the field-wise sum of the receiver and other.
	Add(other T) T

	// Mul returns the field-wise product of the receiver and other.
	Mul(other T) T

	// Lerp linearly interpolates each field of the receiver toward the
	// corresponding field of other by t.
	Lerp(other T, t float64) T
}

// Lerp linearly interpolates between a and b. It is the scalar primitive
// field-wise Lerp implementations are built from. Values of t outside
// [0,1] extrapolate; no clamping is applied.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Input pairs one candidate control state with a per-field weight of the
// same type, so the weight can vary independently per field. Inputs are
// immutable once constructed.
type Input[T Blendable[T]] struct {
	control T
	weight  T
}

// NewInput constructs an Input from a candidate control state and its
// weight. Weights are not constrained to [0,1].
func NewInput[T Blendable[T]](control, weight T) Input[T] {
	return Input[T]{control: control, weight: weight}
}

// Control returns the candidate state.
func (in Input[T]) Control() T { return in.control }

// Weight returns the per-field weight.
func (in Input[T]) Weight() T { return in.weight }

// Scaled returns the candidate scaled field-by-field by the weight.
func (in Input[T]) Scaled() T {
	return in.weight.Mul(in.control)
}
