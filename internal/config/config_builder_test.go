package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The flag source is exercised only through the binaries: flag.Parse works
// on the process-wide FlagSet and cannot be re-run per test.

func TestConfigBuilder_DefaultsOnly(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "config.json", cfg.ConfigPath)
}

func TestConfigBuilder_EnvOverridesDefaults(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"ADDRESS": "0.0.0.0:9000",
		"CONFIG":  "/etc/demo/config.json",
	})

	// Act
	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Address)
	assert.Equal(t, "/etc/demo/config.json", cfg.ConfigPath)
}

func TestConfigBuilder_EnvPartiallySet(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"ADDRESS": "0.0.0.0:9000"})

	// Act
	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()

	// Assert
	require.NoError(t, err)

	// env wins for the field it sets, defaults fill the rest
	assert.Equal(t, "0.0.0.0:9000", cfg.Address)
	assert.Equal(t, "config.json", cfg.ConfigPath)
}

func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&ServerConfig{Address: "first:1111"},
		&ServerConfig{Address: "second:2222", ConfigPath: "second.json"},
	)

	// Act
	cfg, err := b.build()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "first:1111", cfg.Address)
	assert.Equal(t, "second.json", cfg.ConfigPath)
}

func TestConfigBuilder_NoSources_FailsValidation(t *testing.T) {
	// Act
	_, err := newConfigBuilder().build()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}
