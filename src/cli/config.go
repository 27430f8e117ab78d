// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a simulation scenario. Every field is optional: flags
// override file values, and defaults fill whatever remains.
type Config struct {
	// Module is the hosting module path whose sidecar log receives entries.
	// Empty means the harness executable itself.
	Module string `yaml:"module"`

	// Threads is the number of concurrent thread attach/detach pairs raised
	// between attach and detach.
	Threads int `yaml:"threads"`

	// Register controls whether the registration pair is exercised.
	// Unset means yes.
	Register *bool `yaml:"register"`

	// Messages are extra tagged entries appended after process attach,
	// before the thread storm.
	Messages []ScenarioMessage `yaml:"messages"`
}

// ScenarioMessage is one extra entry a scenario appends to the sidecar log.
type ScenarioMessage struct {
	Tag     string `yaml:"tag"`
	Message string `yaml:"message"`
}

// defaultConfig returns the scenario used when no file and no flags say
// otherwise: a small thread storm plus the registration pair.
func defaultConfig() *Config {
	return &Config{Threads: 3}
}

// loadConfig reads a scenario file when one is present. An empty path or a
// missing file is not an error; defaults apply.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("cli: read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parse config file: %w", err)
	}

	return cfg, nil
}

// register reports whether the scenario exercises the registration pair.
func (c *Config) register() bool {
	return c.Register == nil || *c.Register
}
