// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is the global prefix applied to every environment lookup, on top
// of the per-struct envPrefix tags.
const envPrefix = "TRADUZ_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [Config] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
