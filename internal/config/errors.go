package config

import "errors"

var (
	// ErrInvalidServerConfigs indicates the merged server configuration is
	// missing a required field (listen address or settings file path).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
