// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"TRADUZ_CONFIG": "/path/to/config.yaml",

		"TRADUZ_APP_VERSION": "1.2.3",

		"TRADUZ_ADAPTER_MYMEMORY_URL":    "https://mymemory.example",
		"TRADUZ_ADAPTER_DEEPL_URL":       "https://deepl.example",
		"TRADUZ_ADAPTER_MOCHI_URL":       "https://mochi.example/api",
		"TRADUZ_ADAPTER_REQUEST_TIMEOUT": "30s",

		"TRADUZ_STORAGE_CARDS_PATH":     "/var/data/cards.yaml",
		"TRADUZ_STORAGE_PROVIDERS_PATH": "/var/data/config.yaml",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.YAMLFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://mymemory.example", cfg.Adapter.MyMemoryURL)
	assert.Equal(t, "https://deepl.example", cfg.Adapter.DeepLURL)
	assert.Equal(t, "https://mochi.example/api", cfg.Adapter.MochiURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/data/cards.yaml", cfg.Storage.CardsPath)
	assert.Equal(t, "/var/data/config.yaml", cfg.Storage.ProvidersPath)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"TRADUZ_STORAGE_CARDS_PATH": "only-cards.yaml",
	})

	cfg := &Config{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "only-cards.yaml", cfg.Storage.CardsPath)
	assert.Empty(t, cfg.Adapter.MyMemoryURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"TRADUZ_ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &Config{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestParseYAML_AllFields(t *testing.T) {
	content := `
app:
  version: "0.9.0"
adapter:
  mymemory_url: https://mymemory.example
  deepl_url: https://deepl.example
  mochi_url: https://mochi.example/api
  request_timeout: 45s
storage:
  cards_path: /tmp/cards.yaml
  providers_path: /tmp/providers.yaml
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := parseYAML(path)

	require.NoError(t, err)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "https://mymemory.example", cfg.Adapter.MyMemoryURL)
	assert.Equal(t, "https://deepl.example", cfg.Adapter.DeepLURL)
	assert.Equal(t, "https://mochi.example/api", cfg.Adapter.MochiURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/cards.yaml", cfg.Storage.CardsPath)
	assert.Equal(t, "/tmp/providers.yaml", cfg.Storage.ProvidersPath)
}

func TestParseYAML_FileMissing(t *testing.T) {
	_, err := parseYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestParseYAML_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{ not yaml"), 0600))

	_, err := parseYAML(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	content := `
adapter:
  request_timeout: 1h30m
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := parseYAML(path)

	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.Adapter.RequestTimeout)
}

func TestBuilder_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{
		Storage: Storage{CardsPath: "my-cards.yaml"},
	})
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	// explicit value preserved, everything else defaulted
	assert.Equal(t, "my-cards.yaml", cfg.Storage.CardsPath)
	assert.Equal(t, "config.yaml", cfg.Storage.ProvidersPath)
	assert.Equal(t, "https://api.mymemory.translated.net", cfg.Adapter.MyMemoryURL)
	assert.Equal(t, "https://app.mochi.cards/api", cfg.Adapter.MochiURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuilder_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{Adapter: Adapter{MyMemoryURL: "https://first.example"}},
		&Config{Adapter: Adapter{MyMemoryURL: "https://second.example"}},
	)
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "https://first.example", cfg.Adapter.MyMemoryURL)
}

func TestValidate_MissingAdapterURL(t *testing.T) {
	cfg := &Config{
		Adapter: Adapter{
			DeepLURL:       "https://deepl.example",
			MochiURL:       "https://mochi.example",
			RequestTimeout: time.Second,
		},
		Storage: Storage{CardsPath: "cards.yaml", ProvidersPath: "config.yaml"},
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestValidate_ZeroTimeout(t *testing.T) {
	cfg := &Config{
		Adapter: Adapter{
			MyMemoryURL: "https://mymemory.example",
			DeepLURL:    "https://deepl.example",
			MochiURL:    "https://mochi.example",
		},
		Storage: Storage{CardsPath: "cards.yaml", ProvidersPath: "config.yaml"},
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestValidate_MissingStoragePath(t *testing.T) {
	cfg := &Config{
		Adapter: Adapter{
			MyMemoryURL:    "https://mymemory.example",
			DeepLURL:       "https://deepl.example",
			MochiURL:       "https://mochi.example",
			RequestTimeout: time.Second,
		},
		Storage: Storage{ProvidersPath: "config.yaml"},
	}

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
