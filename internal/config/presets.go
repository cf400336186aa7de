package config

import "sort"

var Presets = map[string]*Config{
	// Operator alone at full stick authority.
	"cruise": {
		Dt: 0.02, Duration: 10.0, HoldLast: true, SaturationLimit: 1.0,
		Stick: StickConfig{Enabled: true, Amplitude: 1.0, Period: 4.0, Weight: 1.0},
	},
	// Gentle stick blended with a station-keeping hold and damping,
	// the docking approach mix.
	"docking": {
		Dt: 0.02, Duration: 15.0, HoldLast: true, SaturationLimit: 1.0,
		Stick: StickConfig{Enabled: true, Amplitude: 0.3, Period: 6.0, Weight: 0.4},
		Hold: HoldConfig{
			Enabled:   true,
			Target:    TargetConfig{RobotX: 0.2},
			Authority: 0.6,
			Rate:      0.05,
		},
		Damper: DamperConfig{Enabled: true, Gain: 0.2},
	},
	// Even split between operator and autopilot, for handoff tuning.
	"handoff": {
		Dt: 0.02, Duration: 12.0, HoldLast: true, SaturationLimit: 1.0,
		Stick: StickConfig{Enabled: true, Amplitude: 1.0, Period: 4.0, Weight: 0.5},
		Hold: HoldConfig{
			Enabled:   true,
			Target:    TargetConfig{FieldX: 0.5, Rotation: -0.25},
			Authority: 0.5,
			Rate:      0.1,
		},
	},
	// Autopilot only; the blend settles onto the target.
	"station": {
		Dt: 0.02, Duration: 8.0, HoldLast: true, SaturationLimit: 1.0,
		Hold: HoldConfig{
			Enabled:   true,
			Target:    TargetConfig{FieldY: 0.8, Rotation: 0.1},
			Authority: 1.0,
			Rate:      0.08,
		},
		Damper: DamperConfig{Enabled: true, Gain: 0.1},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
