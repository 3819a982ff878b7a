package config

// ServerConfig holds runtime settings for the file-variant server binary.
// It is assembled by merging command-line flags, environment variables,
// and fixed defaults (earlier sources win for non-zero fields).
type ServerConfig struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: ADDRESS
	Address string `env:"ADDRESS"`

	// ConfigPath is the path to the JSON settings document.
	// Env: CONFIG
	ConfigPath string `env:"CONFIG"`
}

// defaultServerConfig supplies the values merged in last, filling whatever
// flags and environment left unset.
func defaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:    "localhost:8080",
		ConfigPath: "config.json",
	}
}

// GetServerConfig loads and merges the server configuration from all
// available sources in priority order:
//  1. Command-line flags
//  2. Environment variables
//  3. Fixed defaults
func GetServerConfig() (*ServerConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withDefaults().
		build()
}
