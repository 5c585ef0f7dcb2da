package engine

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/void191/v0-game-engine/clock"
	"github.com/void191/v0-game-engine/contact"
)

// Config carries the engine's simulation settings. It is what the host
// application persists alongside a project and feeds to New and
// NewClock when entering play mode.
type Config struct {
	// Gravity is the world gravity vector in m/s².
	Gravity [3]float64 `yaml:"gravity"`
	// FixedDelta is the physics step size in seconds.
	FixedDelta float64 `yaml:"fixed_delta"`
	// TimeScale multiplies wall time fed to the clock.
	TimeScale float64 `yaml:"time_scale"`
	// Restitution is the contact bounciness coefficient.
	Restitution float64 `yaml:"restitution"`
}

// DefaultConfig returns the stock settings: standard gravity, 50 Hz
// stepping, real time, moderately bouncy contacts.
func DefaultConfig() Config {
	return Config{
		Gravity:     [3]float64{0, -9.81, 0},
		FixedDelta:  clock.DefaultFixedDelta,
		TimeScale:   1.0,
		Restitution: contact.DefaultRestitution,
	}
}

// GravityVec returns the gravity as a vector
func (c Config) GravityVec() mgl64.Vec3 {
	return mgl64.Vec3{c.Gravity[0], c.Gravity[1], c.Gravity[2]}
}

// NewClock builds a scheduler from the configured step size and scale
func (c Config) NewClock() *clock.Clock {
	return &clock.Clock{
		FixedDelta: c.FixedDelta,
		TimeScale:  c.TimeScale,
	}
}

// Save writes the config to a yaml file
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LoadConfig reads a yaml config file. Fields absent from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
