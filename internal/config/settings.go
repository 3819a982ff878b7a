// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Dorokhov

package config

import (
	"encoding/json"
	"os"

	"github.com/avdorokhov/devops-demo/internal/logger"
)

// Default values substituted when a settings record lacks the
// corresponding key.
const (
	DefaultVersion     = "1.0.0"
	DefaultEnvironment = "development"
)

// Settings is the resolved configuration record of the file-variant
// application. Arbitrary keys from the source document are preserved;
// consumers read the recognized keys through the accessor methods, which
// fall back safely when a key is absent or carries an unexpected type.
type Settings map[string]any

// defaultSettings is the record used when no config file is present.
func defaultSettings() Settings {
	return Settings{
		"version":     DefaultVersion,
		"environment": DefaultEnvironment,
		"debug":       true,
	}
}

// LoadFile reads a JSON settings document from path.
//
// The policy is deliberately lenient — configuration errors never abort
// the caller:
//   - a missing file logs a warning and yields the default record;
//   - malformed JSON logs an error and yields an empty record.
func LoadFile(path string, log *logger.Logger) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Str("path", path).Msg("config file not found, using defaults")
		return defaultSettings()
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Err(err).Str("path", path).Msg("invalid JSON in config file")
		return Settings{}
	}

	log.Info().Str("path", path).Msg("configuration loaded successfully")
	return settings
}

// Version returns the version key, or [DefaultVersion] when the key is
// absent or not a string.
func (s Settings) Version() string {
	if v, ok := s["version"].(string); ok {
		return v
	}
	return DefaultVersion
}

// Environment returns the environment key, or "unknown" when the key is
// absent or not a string.
func (s Settings) Environment() string {
	if v, ok := s["environment"].(string); ok {
		return v
	}
	return "unknown"
}
