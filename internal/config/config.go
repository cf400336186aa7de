package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt              = 0.02
	DefaultDuration        = 10.0
	DefaultStickAmplitude  = 1.0
	DefaultStickPeriod     = 4.0
	DefaultStickWeight     = 0.7
	DefaultHoldAuthority   = 0.3
	DefaultHoldRate        = 0.1
	DefaultDamperGain      = 0.15
	DefaultSaturationLimit = 1.0
)

type Config struct {
	Dt              float64      `yaml:"dt"`
	Duration        float64      `yaml:"duration"`
	HoldLast        bool         `yaml:"hold_last"`
	SaturationLimit float64      `yaml:"saturation_limit"`
	Stick           StickConfig  `yaml:"stick"`
	Hold            HoldConfig   `yaml:"hold"`
	Damper          DamperConfig `yaml:"damper"`
}

type StickConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
	Weight    float64 `yaml:"weight"`
}

type HoldConfig struct {
	Enabled   bool         `yaml:"enabled"`
	Target    TargetConfig `yaml:"target"`
	Authority float64      `yaml:"authority"`
	Rate      float64      `yaml:"rate"`
}

type TargetConfig struct {
	FieldX   float64 `yaml:"field_x"`
	FieldY   float64 `yaml:"field_y"`
	RobotX   float64 `yaml:"robot_x"`
	RobotY   float64 `yaml:"robot_y"`
	Rotation float64 `yaml:"rotation"`
}

type DamperConfig struct {
	Enabled bool    `yaml:"enabled"`
	Gain    float64 `yaml:"gain"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:              DefaultDt,
		Duration:        DefaultDuration,
		HoldLast:        true,
		SaturationLimit: DefaultSaturationLimit,
		Stick: StickConfig{
			Enabled:   true,
			Amplitude: DefaultStickAmplitude,
			Period:    DefaultStickPeriod,
			Weight:    DefaultStickWeight,
		},
		Hold: HoldConfig{
			Authority: DefaultHoldAuthority,
			Rate:      DefaultHoldRate,
		},
		Damper: DamperConfig{
			Gain: DefaultDamperGain,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
