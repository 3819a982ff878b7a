// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Dorokhov

package config

import (
	"fmt"
	"strings"
)

// Config is the environment-sourced settings record used by the simple demo
// application. Every field has a fixed default, so loading never fails on
// absent variables.
type Config struct {
	// Version is the semantic version string of the running application.
	// Env: VERSION
	Version string `env:"VERSION" envDefault:"1.0.0" json:"version"`

	// Environment is the deployment stage name, e.g. "development",
	// "staging", "production". The value is not constrained to an enum.
	// Env: ENVIRONMENT
	Environment string `env:"ENVIRONMENT" envDefault:"development" json:"environment"`

	// Debug toggles verbose output. Parsed leniently: the string "true"
	// (any case) is true, anything else is false.
	// Env: DEBUG
	Debug FlexBool `env:"DEBUG" envDefault:"true" json:"debug"`

	// MessagePrefix is prepended to demo messages by the formatter.
	// Env: MESSAGE_PREFIX
	MessagePrefix string `env:"MESSAGE_PREFIX" envDefault:"[DEMO]" json:"message_prefix"`
}

// GetConfig resolves the environment-variant configuration. Absent
// environment variables are substituted with fixed defaults and are never
// an error.
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ToMap exposes the resolved configuration as a [Settings] record.
func (c *Config) ToMap() Settings {
	return Settings{
		"version":        c.Version,
		"environment":    c.Environment,
		"debug":          bool(c.Debug),
		"message_prefix": c.MessagePrefix,
	}
}

// String renders the configuration for display, e.g.
// "Config(version=1.0.0, env=development, debug=true)".
func (c *Config) String() string {
	return fmt.Sprintf("Config(version=%s, env=%s, debug=%t)", c.Version, c.Environment, bool(c.Debug))
}

// FlexBool is a boolean that parses the way the original demo expects:
// the string "true" compared case-insensitively yields true, any other
// value yields false. Parsing never fails.
type FlexBool bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *FlexBool) UnmarshalText(text []byte) error {
	*b = FlexBool(strings.EqualFold(strings.TrimSpace(string(text)), "true"))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b FlexBool) MarshalText() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}
