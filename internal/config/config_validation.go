package config

// validate checks that the merged [ServerConfig] satisfies the invariants
// required at startup. With defaults in the merge chain it only trips when
// the chain itself is misassembled.
func (cfg *ServerConfig) validate() error {
	if cfg.Address == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.ConfigPath == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
