package config

import "flag"

// ParseFlags parses the server configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json settings file path
func ParseFlags() *ServerConfig {
	var serverAddress string
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &ServerConfig{
		Address:    serverAddress,
		ConfigPath: jsonConfigPath,
	}
}
