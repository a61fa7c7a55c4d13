package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withYAML() *configBuilder {
	var yamlPath string
	isYAMLSpecified := false

	for _, cfg := range b.configs {
		if cfg.YAMLFilePath != "" {
			isYAMLSpecified = true
			yamlPath = cfg.YAMLFilePath
		}
	}

	if isYAMLSpecified {
		yamlCfg, err := parseYAML(yamlPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, yamlCfg)
	}

	return b
}

// withDefaults appends the built-in defaults as the lowest-priority source:
// mergo keeps the first non-zero value seen, so anything set by env, flags,
// or the YAML file wins over these.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &Config{
		Adapter: Adapter{
			MyMemoryURL:    "https://api.mymemory.translated.net",
			DeepLURL:       "https://api.deepl.com",
			MochiURL:       "https://app.mochi.cards/api",
			RequestTimeout: 10 * time.Second,
		},
		Storage: Storage{
			CardsPath:     "cards.yaml",
			ProvidersPath: "config.yaml",
		},
	})
	return b
}
