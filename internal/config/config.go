package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Export   ExportConfig   `yaml:"export"`
	Playback PlaybackConfig `yaml:"playback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ExportConfig contains WAV export configuration
type ExportConfig struct {
	SampleRate int `yaml:"sample_rate"` // 22050 or 44100
	SampleSize int `yaml:"sample_size"` // 8, 16 or 32
	Channels   int `yaml:"channels"`    // 1 (mono) or 2 (stereo)
}

// PlaybackConfig contains audio playback configuration
type PlaybackConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float32 `yaml:"volume"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			SampleRate: 44100,
			SampleSize: 16,
			Channels:   1,
		},
		Playback: PlaybackConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads the configuration from a file, falling back to
// defaults when the file is missing
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("error reading config file: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}

// Validate checks the configuration for unsupported values
func (c *Config) Validate() error {
	if err := c.Export.Validate(); err != nil {
		return err
	}

	if c.Playback.Volume < 0 || c.Playback.Volume > 1 {
		return fmt.Errorf("playback volume out of range: %v", c.Playback.Volume)
	}

	return nil
}

// Validate checks the export configuration for unsupported values
func (e *ExportConfig) Validate() error {
	switch e.SampleRate {
	case 22050, 44100:
	default:
		return fmt.Errorf("unsupported export sample rate: %d", e.SampleRate)
	}

	switch e.SampleSize {
	case 8, 16, 32:
	default:
		return fmt.Errorf("unsupported export sample size: %d", e.SampleSize)
	}

	switch e.Channels {
	case 1, 2:
	default:
		return fmt.Errorf("unsupported export channel count: %d", e.Channels)
	}

	return nil
}
