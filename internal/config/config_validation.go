// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

package config

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *Config) validate() error {
	if cfg.Adapter.MyMemoryURL == "" || cfg.Adapter.DeepLURL == "" || cfg.Adapter.MochiURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.CardsPath == "" || cfg.Storage.ProvidersPath == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
