package pilot

import (
	"math"
	"testing"

	"github.com/san-kum/blendlab/internal/drive"
)

func TestConstant(t *testing.T) {
	c := NewConstant(drive.Vector{FieldX: 1}, drive.Splat(0.5))

	in := c.Sample(0)
	if got := in.Scaled(); got.FieldX != 0.5 {
		t.Errorf("expected scaled FieldX 0.5, got %f", got.FieldX)
	}

	c.Set(drive.Vector{FieldX: 2})
	in = c.Sample(1)
	if got := in.Scaled(); got.FieldX != 1.0 {
		t.Errorf("expected scaled FieldX 1.0 after Set, got %f", got.FieldX)
	}

	c.SetWeight(drive.Zero)
	in = c.Sample(2)
	if got := in.Scaled(); got != drive.Zero {
		t.Errorf("zero weight should mute everything, got %+v", got)
	}
}

func TestStick_Sample(t *testing.T) {
	s := NewStick(1.0, 4.0, 0.7)

	// At t=0 the circle starts pointing along field Y.
	in := s.Sample(0)
	ctrl := in.Control()
	if math.Abs(ctrl.FieldX) > 1e-12 {
		t.Errorf("expected FieldX 0 at t=0, got %f", ctrl.FieldX)
	}
	if math.Abs(ctrl.FieldY-1.0) > 1e-12 {
		t.Errorf("expected FieldY 1 at t=0, got %f", ctrl.FieldY)
	}

	// Quarter period later the deflection has rotated to field X.
	in = s.Sample(1.0)
	ctrl = in.Control()
	if math.Abs(ctrl.FieldX-1.0) > 1e-12 {
		t.Errorf("expected FieldX 1 at quarter period, got %f", ctrl.FieldX)
	}
	if math.Abs(ctrl.FieldY) > 1e-12 {
		t.Errorf("expected FieldY 0 at quarter period, got %f", ctrl.FieldY)
	}

	w := in.Weight()
	if w.FieldX != 0.7 || w.Rotation != 0.7 {
		t.Errorf("driven fields should carry the stick weight, got %+v", w)
	}
	if w.RobotX != 0 || w.RobotY != 0 {
		t.Errorf("robot-relative fields should stay muted, got %+v", w)
	}
}

func TestHold_ConvergesOnTarget(t *testing.T) {
	target := drive.Vector{RobotX: 2.0, Rotation: -1.0}
	h := NewHold(target, 1.0, 0.5)

	// First sample covers half the distance from zero.
	in := h.Sample(0)
	ctrl := in.Control()
	if math.Abs(ctrl.RobotX-1.0) > 1e-12 || math.Abs(ctrl.Rotation+0.5) > 1e-12 {
		t.Errorf("first sample should be halfway to target, got %+v", ctrl)
	}

	for i := 0; i < 50; i++ {
		in = h.Sample(float64(i))
	}
	ctrl = in.Control()
	if math.Abs(ctrl.RobotX-2.0) > 1e-6 || math.Abs(ctrl.Rotation+1.0) > 1e-6 {
		t.Errorf("hold did not converge: %+v", ctrl)
	}

	if in.Weight() != drive.Splat(1.0) {
		t.Errorf("expected uniform authority weight, got %+v", in.Weight())
	}
}

func TestHold_SnapRate(t *testing.T) {
	target := drive.Vector{FieldY: 3}
	h := NewHold(target, 0.5, 1.0)

	in := h.Sample(0)
	if in.Control() != target {
		t.Errorf("rate 1 should snap to target, got %+v", in.Control())
	}
}

func TestDamper(t *testing.T) {
	d := NewDamper(0.25)

	// Before any observation the damper contributes nothing.
	in := d.Sample(0)
	if in.Scaled() != drive.Zero {
		t.Errorf("expected muted contribution before first cycle, got %+v", in.Scaled())
	}

	d.OnCycle(drive.Vector{FieldX: 2.0, Rotation: -4.0}, 0)
	in = d.Sample(0.02)
	got := in.Scaled()
	if math.Abs(got.FieldX+0.5) > 1e-12 {
		t.Errorf("expected FieldX -0.5, got %f", got.FieldX)
	}
	if math.Abs(got.Rotation-1.0) > 1e-12 {
		t.Errorf("expected Rotation 1.0, got %f", got.Rotation)
	}
}

func TestBind_DefersSampling(t *testing.T) {
	c := NewConstant(drive.Vector{FieldX: 1}, drive.Ones)

	now := 0.0
	src := Bind(c, func() float64 { return now })

	// Mutations after binding are visible at evaluation time.
	c.Set(drive.Vector{FieldX: 5})
	now = 3.0

	in := src()
	if in.Control().FieldX != 5 {
		t.Errorf("binding should defer sampling, got %+v", in.Control())
	}
}
