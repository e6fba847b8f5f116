// Package config loads and saves the viewer configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/morph/internal/layout"
)

const (
	DefaultDurationMS = 1200
	DefaultFrameRate  = 60
	DefaultDistance   = 3000.0
)

type Config struct {
	Dataset   string       `yaml:"dataset"`
	Formation string       `yaml:"formation"`
	Duration  int          `yaml:"duration_ms"`
	FrameRate int          `yaml:"frame_rate"`
	Source    SourceConfig `yaml:"source"`
	Camera    CameraConfig `yaml:"camera"`
}

// SourceConfig describes an HTTP dataset source. The token is read from the
// named environment variable, never stored in the file.
type SourceConfig struct {
	URL      string `yaml:"url"`
	TokenEnv string `yaml:"token_env"`
}

type CameraConfig struct {
	Distance  float64 `yaml:"distance"`
	AutoOrbit bool    `yaml:"auto_orbit"`
}

func DefaultConfig() *Config {
	return &Config{
		Formation: string(layout.FormationTable),
		Duration:  DefaultDurationMS,
		FrameRate: DefaultFrameRate,
		Camera: CameraConfig{
			Distance:  DefaultDistance,
			AutoOrbit: false,
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
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if !layout.Formation(c.Formation).Valid() {
		return fmt.Errorf("config: unknown formation %q", c.Formation)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration_ms must be positive, got %d", c.Duration)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("config: frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.Camera.Distance <= 0 {
		return fmt.Errorf("config: camera distance must be positive, got %f", c.Camera.Distance)
	}
	return nil
}

// TransitionDuration returns the configured duration as a time.Duration.
func (c *Config) TransitionDuration() time.Duration {
	return time.Duration(c.Duration) * time.Millisecond
}

// Token resolves the source token from the environment, or "" when unset.
func (c *Config) Token() string {
	if c.Source.TokenEnv == "" {
		return ""
	}
	return os.Getenv(c.Source.TokenEnv)
}
