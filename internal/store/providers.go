package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/models"
)

type fileProviderConfigRepository struct {
	path   string
	logger *logger.Logger
}

// NewProviderConfigRepository constructs a [ProviderConfigRepository] backed
// by the YAML file at path. The file is created on the first Save.
func NewProviderConfigRepository(path string, logger *logger.Logger) ProviderConfigRepository {
	return &fileProviderConfigRepository{path: path, logger: logger}
}

func (f *fileProviderConfigRepository) Load(ctx context.Context) (models.ProviderConfig, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.ProviderConfig{}, nil
		}
		return models.ProviderConfig{}, fmt.Errorf("read providers file: %w", err)
	}

	var cfg models.ProviderConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return models.ProviderConfig{}, fmt.Errorf("parse providers file: %w", err)
	}

	return cfg, nil
}

func (f *fileProviderConfigRepository) Save(ctx context.Context, cfg models.ProviderConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal provider config: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp providers file: %w", err)
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp providers file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp providers file: %w", err)
	}

	// Credentials file: keep it out of reach of other users.
	if err = os.Chmod(tmp.Name(), 0600); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod temp providers file: %w", err)
	}

	if err = os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace providers file: %w", err)
	}

	f.logger.Debug().Msg("provider config saved")

	return nil
}
