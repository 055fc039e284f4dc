package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings are the user-tunable values read from the YAML settings file.
// Command-line flags override whatever the file provides.
type Settings struct {
	Adapter        string        `yaml:"adapter"`
	Demo           bool          `yaml:"demo"`
	DemoDelay      time.Duration `yaml:"demo_delay"`
	DemoFailure    float64       `yaml:"demo_failure_rate"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	Leaderboard    string        `yaml:"leaderboard"`
	LogFile        string        `yaml:"log_file"`
	LogLevel       string        `yaml:"log_level"`
}

// DefaultSettings returns settings populated from the package constants.
func DefaultSettings() *Settings {
	return &Settings{
		Adapter:        "hci0",
		DemoDelay:      DemoConnectDelay,
		DemoFailure:    DemoFailureRate,
		ConnectTimeout: ConnectTimeout,
		Leaderboard:    LeaderboardSource,
		LogFile:        LogFile,
		LogLevel:       LogLevel,
	}
}

// Load reads settings from path. A missing file is not an error and yields
// the defaults; fields absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects values the application cannot work with.
func (s *Settings) Validate() error {
	if s.DemoFailure < 0 || s.DemoFailure > 1 {
		return fmt.Errorf("demo_failure_rate must be within [0, 1], got %v", s.DemoFailure)
	}
	if s.DemoDelay < 0 {
		return fmt.Errorf("demo_delay must not be negative, got %v", s.DemoDelay)
	}
	if s.ConnectTimeout < 0 {
		return fmt.Errorf("connect_timeout must not be negative, got %v", s.ConnectTimeout)
	}
	return nil
}
