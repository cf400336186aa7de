package drive

import (
	"math"
	"testing"

	"github.com/san-kum/blendlab/internal/blend"
)

func vecEq(t *testing.T, got, want Vector, tol float64) {
	t.Helper()
	gf, wf := got.Fields(), want.Fields()
	for i := range gf {
		if math.Abs(gf[i]-wf[i]) > tol {
			t.Errorf("field %d: got %v, want %v", i, gf[i], wf[i])
		}
	}
}

func TestVector_Arithmetic(t *testing.T) {
	a := Vector{1, 2, 3, 4, 5}
	b := Vector{10, 20, 30, 40, 50}

	vecEq(t, a.Add(b), Vector{11, 22, 33, 44, 55}, 0)
	vecEq(t, a.Mul(b), Vector{10, 40, 90, 160, 250}, 0)
	vecEq(t, b.Mul(a), a.Mul(b), 0)
	vecEq(t, a.Scale(2), Vector{2, 4, 6, 8, 10}, 0)
}

func TestVector_Lerp(t *testing.T) {
	a := Vector{0, 0, 0, 0, 0}
	b := Vector{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		t        float64
		expected Vector
	}{
		{"start", 0.0, a},
		{"end", 1.0, b},
		{"midpoint", 0.5, Vector{0.5, 1, 1.5, 2, 2.5}},
		{"extrapolate", 2.0, Vector{2, 4, 6, 8, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vecEq(t, a.Lerp(b, tt.t), tt.expected, 1e-12)
		})
	}
}

func TestVector_FieldsAndLabels(t *testing.T) {
	v := Vector{1, 2, 3, 4, 5}
	fields := v.Fields()
	labels := Labels()

	if len(fields) != len(labels) {
		t.Fatalf("fields/labels length mismatch: %d vs %d", len(fields), len(labels))
	}
	for i, want := range []float64{1, 2, 3, 4, 5} {
		if fields[i] != want {
			t.Errorf("field %d: got %v, want %v", i, fields[i], want)
		}
	}
	if labels[0] != "field_x" || labels[4] != "rotation" {
		t.Errorf("unexpected labels: %v", labels)
	}
}

func TestVector_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		valid bool
	}{
		{"zero", Zero, true},
		{"ones", Ones, true},
		{"with NaN", Vector{FieldY: math.NaN()}, false},
		{"with +Inf", Vector{Rotation: math.Inf(1)}, false},
		{"with -Inf", Vector{RobotX: math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

// Mirrors the half-weight blend: a single source with weight 0.5 on every
// field halves every field of the candidate.
func TestVector_HalfWeightBlend(t *testing.T) {
	ctl := blend.New[Vector]()
	ctl.AddSource(func() blend.Input[Vector] {
		return blend.NewInput(Vector{0.1, 0.2, 0.3, 0.4, 0.5}, Splat(0.5))
	})

	out, ok := ctl.Evaluate()
	if !ok {
		t.Fatal("expected present result")
	}
	vecEq(t, out, Vector{0.05, 0.10, 0.15, 0.20, 0.25}, 1e-12)
}

func TestVector_TwoSourceBlend(t *testing.T) {
	ctl := blend.New[Vector]().
		WithSource(func() blend.Input[Vector] {
			return blend.NewInput(Vector{FieldX: 1.0}, Splat(0.5))
		}).
		WithSource(func() blend.Input[Vector] {
			return blend.NewInput(Vector{FieldX: 0.5, Rotation: 1.0}, Splat(0.5))
		})

	out, ok := ctl.Evaluate()
	if !ok {
		t.Fatal("expected present result")
	}
	vecEq(t, out, Vector{FieldX: 0.75, Rotation: 0.5}, 1e-12)
}
