package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type yamlConfig struct {
	App struct {
		Version string `yaml:"version"`
	} `yaml:"app,omitempty"`

	Adapter struct {
		MyMemoryURL    string   `yaml:"mymemory_url"`
		DeepLURL       string   `yaml:"deepl_url"`
		MochiURL       string   `yaml:"mochi_url"`
		RequestTimeout Duration `yaml:"request_timeout"`
	} `yaml:"adapter,omitempty"`

	Storage struct {
		CardsPath     string `yaml:"cards_path"`
		ProvidersPath string `yaml:"providers_path"`
	} `yaml:"storage,omitempty"`
}

func parseYAML(yamlFilePath string) (*Config, error) {
	yamlFile, err := os.Open(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer yamlFile.Close()

	var fileCfg yamlConfig
	if err := yaml.NewDecoder(yamlFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	cfg := &Config{
		App: App{
			Version: fileCfg.App.Version,
		},
		Adapter: Adapter{
			MyMemoryURL:    fileCfg.Adapter.MyMemoryURL,
			DeepLURL:       fileCfg.Adapter.DeepLURL,
			MochiURL:       fileCfg.Adapter.MochiURL,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			CardsPath:     fileCfg.Storage.CardsPath,
			ProvidersPath: fileCfg.Storage.ProvidersPath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from strings like "1h", "30s" as well as plain integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var asInt int64
	if err := value.Decode(&asInt); err == nil {
		*d = Duration(time.Duration(asInt))
		return nil
	}

	var asString string
	if err := value.Decode(&asString); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(asString)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
