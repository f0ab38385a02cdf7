// Package config loads pulsenet settings from an optional YAML file and
// key=value overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/maisem/pulsenet"
	"github.com/maisem/pulsenet/internal/logging"
)

// Config holds the settings for a run.
type Config struct {
	Broadcaster string `yaml:"broadcaster" mapstructure:"broadcaster"`
	Sink        string `yaml:"sink" mapstructure:"sink"`
	Feeder      string `yaml:"feeder" mapstructure:"feeder"`
	Presses     int    `yaml:"presses" mapstructure:"presses"`
	Limit       int    `yaml:"limit" mapstructure:"limit"`
	LogLevel    string `yaml:"log_level" mapstructure:"log_level"`
	MetricsFile string `yaml:"metrics_file" mapstructure:"metrics_file"`
	Color       bool   `yaml:"color" mapstructure:"color"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Broadcaster: pulsenet.DefaultBroadcaster,
		Sink:        pulsenet.DefaultSink,
		Presses:     pulsenet.DefaultPresses,
		Limit:       pulsenet.DefaultLimit,
		LogLevel:    "info",
		Color:       true,
	}
}

// Load reads the YAML file at path, if path is not empty, applies the
// overrides on top and validates the result.
func Load(path string, overrides map[string]string) (Config, error) {
	raw := map[string]any{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	for k, v := range overrides {
		raw[k] = v
	}

	cfg := Default()
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		Metadata:         &md,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if len(md.Unused) > 0 {
		return Config{}, fmt.Errorf("unknown config keys: %v", md.Unused)
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Broadcaster == "" {
		errs = append(errs, errors.New("broadcaster: must not be empty"))
	}
	if c.Sink == "" {
		errs = append(errs, errors.New("sink: must not be empty"))
	}
	if c.Presses <= 0 {
		errs = append(errs, fmt.Errorf("presses: must be positive (got %d)", c.Presses))
	}
	if c.Limit < 0 {
		errs = append(errs, fmt.Errorf("limit: must not be negative (got %d)", c.Limit))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// Options returns the network options for c.
func (c Config) Options() []pulsenet.Option {
	opts := []pulsenet.Option{
		pulsenet.WithBroadcaster(c.Broadcaster),
		pulsenet.WithSink(c.Sink),
	}
	if c.Feeder != "" {
		opts = append(opts, pulsenet.WithFeeder(c.Feeder))
	}
	return opts
}
