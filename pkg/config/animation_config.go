// Package config loads YAML animation unit definitions and builds
// runnable Animables from them. A unit describes one animation's
// scheduling (duration, repeat policy) and its behavior kind: a
// "tween" interpolating a float value through an easing curve, or a
// "frames" sequence advancing a logical frame index at a fixed FPS.
package config

import (
	"fmt"
	"os"

	"github.com/decker502/animable/pkg/anim"
	"github.com/decker502/animable/pkg/frameseq"
	"github.com/decker502/animable/pkg/tween"
	"gopkg.in/yaml.v3"
)

// Unit kinds accepted in configuration files.
const (
	KindTween  = "tween"
	KindFrames = "frames"
)

// Config is the top-level structure of an animation definition file.
type Config struct {
	Global     GlobalConfig `yaml:"global"`
	Animations []UnitConfig `yaml:"animations"`
}

// GlobalConfig carries settings shared by every unit in the file.
type GlobalConfig struct {
	Playback PlaybackConfig `yaml:"playback"`
}

// PlaybackConfig configures the driving frame loop.
type PlaybackConfig struct {
	// TPS is the target ticks per second of the frame loop.
	TPS int `yaml:"tps"`

	// Speed is the playback speed multiplier applied to the frame
	// clock; 1.0 (the default when 0) is normal speed.
	Speed float64 `yaml:"speed"`
}

// UnitConfig defines a single animation unit.
type UnitConfig struct {
	// ID identifies the unit in code; must be unique per manager.
	ID string `yaml:"id"`

	// Name is the display name used by tools and demos.
	Name string `yaml:"name,omitempty"`

	// Kind selects the behavior: "tween" or "frames".
	Kind string `yaml:"kind"`

	// Repeat enables looping; nil defaults to true, an explicit false
	// makes the unit one-shot.
	Repeat *bool `yaml:"repeat,omitempty"`

	// RepeatCount limits looping; 0 means unlimited.
	RepeatCount int `yaml:"repeat_count,omitempty"`

	// Duration is the cycle length in seconds (tween kind).
	Duration float64 `yaml:"duration,omitempty"`

	// Easing names the curve for tween units, e.g. "in_out_quad".
	// Empty means linear.
	Easing string `yaml:"easing,omitempty"`

	// From and To are the tween interpolation endpoints.
	From float64 `yaml:"from,omitempty"`
	To   float64 `yaml:"to,omitempty"`

	// FPS, StartFrame and FrameCount describe a frames unit; the
	// cycle duration derives from FrameCount / FPS.
	FPS        float64 `yaml:"fps,omitempty"`
	StartFrame int     `yaml:"start_frame,omitempty"`
	FrameCount int     `yaml:"frame_count,omitempty"`

	// HoldLastFrame keeps the last frame visible after a frames unit
	// stops, instead of resetting to the start frame.
	HoldLastFrame bool `yaml:"hold_last_frame,omitempty"`
}

// Repeated resolves the Repeat field with its default of true.
func (u *UnitConfig) Repeated() bool {
	return u.Repeat == nil || *u.Repeat
}

// LoadConfig loads and validates an animation definition file.
//
// Parameters:
//   - path: the YAML file path
//
// Returns:
//   - *Config: the parsed configuration
//   - error: read, parse or validation error
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse animation config %s: %w", path, err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid animation config %s: %w", path, err)
	}
	return &config, nil
}

// validateConfig checks every unit for the fields its kind requires.
func validateConfig(config *Config) error {
	seen := make(map[string]bool, len(config.Animations))
	for i := range config.Animations {
		u := &config.Animations[i]
		if u.ID == "" {
			return fmt.Errorf("animation unit %d: missing id", i)
		}
		if seen[u.ID] {
			return fmt.Errorf("animation unit %q: duplicate id", u.ID)
		}
		seen[u.ID] = true

		switch u.Kind {
		case KindTween:
			if u.Duration <= 0 {
				return fmt.Errorf("animation unit %q: tween requires duration > 0", u.ID)
			}
			if _, err := tween.EasingByName(u.Easing); err != nil {
				return fmt.Errorf("animation unit %q: %w", u.ID, err)
			}
		case KindFrames:
			if u.FPS <= 0 {
				return fmt.Errorf("animation unit %q: frames requires fps > 0", u.ID)
			}
			if u.FrameCount <= 0 {
				return fmt.Errorf("animation unit %q: frames requires frame_count > 0", u.ID)
			}
		default:
			return fmt.Errorf("animation unit %q: unknown kind %q", u.ID, u.Kind)
		}

		if u.RepeatCount < 0 {
			return fmt.Errorf("animation unit %q: repeat_count must be >= 0", u.ID)
		}
	}
	return nil
}

// Sink receives the output of a built animation unit. Value is
// required for tween units, Frame for frames units.
type Sink struct {
	Value func(value float64)
	Frame func(frame int)
}

// NewAnimable builds a stopped, group-less Animable from the unit
// definition, feeding its output into the sink.
//
// Parameters:
//   - owner: the opaque owning object handle for the Animable
//   - sink: output callbacks; the callback matching the unit kind
//     must be non-nil
//
// Returns:
//   - *anim.Animable: the configured Animable, in state Stopped
//   - error: if the kind/sink combination is unusable
func (u *UnitConfig) NewAnimable(owner any, sink Sink) (*anim.Animable, error) {
	switch u.Kind {
	case KindTween:
		if sink.Value == nil {
			return nil, fmt.Errorf("animation unit %q: tween requires a value sink", u.ID)
		}
		easing, err := tween.EasingByName(u.Easing)
		if err != nil {
			return nil, fmt.Errorf("animation unit %q: %w", u.ID, err)
		}
		tw := &tween.Tween{
			From:     u.From,
			To:       u.To,
			Duration: u.Duration,
			Ease:     easing,
			Apply:    sink.Value,
		}
		return tw.NewAnimable(owner, u.Repeated(), u.RepeatCount), nil

	case KindFrames:
		if sink.Frame == nil {
			return nil, fmt.Errorf("animation unit %q: frames requires a frame sink", u.ID)
		}
		seq := &frameseq.Sequence{
			FPS:           u.FPS,
			StartFrame:    u.StartFrame,
			FrameCount:    u.FrameCount,
			HoldLastFrame: u.HoldLastFrame,
			OnFrame:       sink.Frame,
		}
		return seq.NewAnimable(owner, u.Repeated(), u.RepeatCount), nil

	default:
		return nil, fmt.Errorf("animation unit %q: unknown kind %q", u.ID, u.Kind)
	}
}
