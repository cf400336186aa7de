// Package pilot provides per-cycle samplers that feed weighted drive
// commands into a blend.
//
// Pilots implement a single Sample method producing one weighted input
// per control cycle:
//
//   - [Constant]: fixed command and weight, settable at runtime
//   - [Stick]: synthetic operator joystick (sinusoidal translation/rotation)
//   - [Hold]: station-keeping autopilot converging on a target command
//   - [Damper]: feedback term opposing the previous cycle's output
//
// # Usage
//
//	stick := pilot.NewStick(1.0, 4.0, 0.7)
//	ctl.AddSource(pilot.Bind(stick, clock.Now))
//	// stick.Sample is called once per Evaluate, at evaluation time
//
// Weights emitted by pilots are per-field, so a pilot can drive rotation
// at full authority while leaving translation to another pilot.
package pilot
