// Package blend reduces a set of weighted candidate control states into
// one output state per control cycle.
//
// The package defines the generic capability contract and the aggregator
// that folds candidates together:
//
//   - [Blendable]: field-wise arithmetic a control state type must provide
//   - [Input]: one candidate state paired with a per-field weight
//   - [Source]: deferred producer invoked once per evaluation
//   - [Control]: ordered source registry with a fold-based Evaluate
//
// # Usage
//
//	ctl := blend.New[drive.Vector]()
//	ctl.AddSource(func() blend.Input[drive.Vector] {
//		return blend.NewInput(stick.Read(), drive.Splat(0.5))
//	})
//	out, ok := ctl.Evaluate() // once per cycle
//
// Weights are not constrained to [0,1]; negative weights invert a
// contribution and values past 1 amplify it. The package never inspects
// individual fields and never sanitizes NaN or Inf.
//
// # Thread Safety
//
// Control instances are NOT thread-safe. Register sources at setup time
// and evaluate from a single goroutine.
package blend
