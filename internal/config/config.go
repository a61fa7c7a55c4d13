// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

package config

import (
	"time"
)

// Config is the top-level configuration container for the traduz client.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// All environment lookups additionally carry the global TRADUZ_ prefix.
type Config struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Adapter holds the endpoints and timeout used by the outbound HTTP
	// provider adapters (translation and export).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the paths of the local card file and the provider
	// credentials file.
	Storage Storage `envPrefix:"STORAGE_"`

	// RunSetup forces the interactive provider setup flow even when both
	// providers are already configured. Populated via the -setup flag.
	RunSetup bool

	// YAMLFilePath is the optional path to a YAML configuration file.
	// When non-empty, the file is parsed and merged behind the values
	// already loaded from environment variables and flags.
	// Populated via the TRADUZ_CONFIG environment variable or the
	// -c / -config flag.
	YAMLFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the UI footer.
	// Env: TRADUZ_APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds configuration for the outbound HTTP provider integrations.
type Adapter struct {
	// MyMemoryURL is the base URL of the free MyMemory translation API.
	// Env: TRADUZ_ADAPTER_MYMEMORY_URL
	MyMemoryURL string `env:"MYMEMORY_URL"`

	// DeepLURL is the base URL of the premium DeepL translation API.
	// Env: TRADUZ_ADAPTER_DEEPL_URL
	DeepLURL string `env:"DEEPL_URL"`

	// MochiURL is the base URL of the Mochi flashcard API.
	// Env: TRADUZ_ADAPTER_MOCHI_URL
	MochiURL string `env:"MOCHI_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// provider request (e.g. "10s", "1m"). There is no retry: a request
	// either completes within the timeout or fails.
	// Env: TRADUZ_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the local file paths used by the store package.
type Storage struct {
	// CardsPath is the path of the YAML file holding the flashcards.
	// Env: TRADUZ_STORAGE_CARDS_PATH
	CardsPath string `env:"CARDS_PATH"`

	// ProvidersPath is the path of the YAML file holding provider
	// credentials and the selected remote deck.
	// Env: TRADUZ_STORAGE_PROVIDERS_PATH
	ProvidersPath string `env:"PROVIDERS_PATH"`
}

// GetConfig loads, merges, and validates the client configuration from all
// available sources. See the package documentation for source priority.
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withYAML().
		withDefaults().
		build()
}
