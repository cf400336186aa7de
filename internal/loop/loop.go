// Package loop runs a blended control cycle at a fixed period, collecting
// outputs, metrics, and observer callbacks along the way.
package loop

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/blendlab/internal/blend"
)

// Metric accumulates a scalar statistic over blended outputs.
type Metric[T any] interface {
	Name() string
	Observe(out T, t float64)
	Value() float64
	Reset()
}

// Observer is notified with each cycle's blended output. Feedback
// samplers (e.g. dampers) implement this to see what was commanded.
type Observer[T any] interface {
	OnCycle(out T, t float64)
}

// Config holds the cycle parameters for one run.
type Config struct {
	// Dt is the cycle period in seconds.
	Dt float64
	// Duration is the total run time in seconds.
	Duration float64
	// HoldLast re-emits the previous output on cycles where no sources
	// are registered. Without it, empty cycles produce no output.
	HoldLast bool
}

func DefaultConfig() Config {
	return Config{
		Dt:       0.02,
		Duration: 10.0,
		HoldLast: true,
	}
}

// Result collects the outputs of one run.
type Result[T any] struct {
	Outputs     []T
	Times       []float64
	Metrics     map[string]float64
	Cycles      int
	EmptyCycles int
}

// Runner drives a blend.Control through repeated evaluation cycles.
// Not safe for concurrent use.
type Runner[T blend.Blendable[T]] struct {
	ctl       *blend.Control[T]
	clock     *Clock
	metrics   []Metric[T]
	observers []Observer[T]
}

// New creates a Runner around ctl with a fresh clock. Bind time-dependent
// sources to [Runner.Clock] before running.
func New[T blend.Blendable[T]](ctl *blend.Control[T]) *Runner[T] {
	return &Runner[T]{
		ctl:       ctl,
		clock:     NewClock(),
		metrics:   make([]Metric[T], 0),
		observers: make([]Observer[T], 0),
	}
}

// Clock returns the runner's cycle time source.
func (r *Runner[T]) Clock() *Clock { return r.clock }

func (r *Runner[T]) AddMetric(m Metric[T])     { r.metrics = append(r.metrics, m) }
func (r *Runner[T]) AddObserver(o Observer[T]) { r.observers = append(r.observers, o) }

// Run evaluates the blend once per cycle from t=0 until cfg.Duration.
// A source that panics is not intercepted; the panic surfaces to the
// caller as the source raised it.
func (r *Runner[T]) Run(ctx context.Context, cfg Config) (*Result[T], error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	// Round so periods like 0.1 that are inexact in binary do not drop
	// the final cycle.
	steps := int(math.Round(cfg.Duration / cfg.Dt))
	result := &Result[T]{
		Outputs: make([]T, 0, steps),
		Times:   make([]float64, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}
	r.clock.Reset()

	var last T
	haveLast := false

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := r.clock.Now()
		out, ok := r.ctl.Evaluate()
		if !ok {
			result.EmptyCycles++
			if cfg.HoldLast && haveLast {
				out, ok = last, true
			}
		}

		if ok {
			last, haveLast = out, true

			for _, m := range r.metrics {
				m.Observe(out, t)
			}
			for _, obs := range r.observers {
				obs.OnCycle(out, t)
			}

			result.Outputs = append(result.Outputs, out)
			result.Times = append(result.Times, t)
		}

		result.Cycles++
		r.clock.Advance(cfg.Dt)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: got %f", ErrBadTimestep, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: got %f", ErrBadDuration, cfg.Duration)
	}
	return nil
}
