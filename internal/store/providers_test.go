package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/models"
)

func newTestProviderRepo(t *testing.T) (ProviderConfigRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	return NewProviderConfigRepository(path, logger.Nop()), path
}

func TestProviderConfig_AbsentFileMeansDisabled(t *testing.T) {
	repo, _ := newTestProviderRepo(t)

	cfg, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.False(t, cfg.Mochi.Enabled())
	assert.False(t, cfg.DeepL.Enabled())
}

func TestProviderConfig_SaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestProviderRepo(t)
	ctx := context.Background()

	want := models.ProviderConfig{
		Mochi: models.MochiConfig{APIKey: "mochi-key", SelectedDeckID: "deck-42"},
		DeepL: models.DeepLConfig{APIKey: "deepl-key"},
	}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.Mochi.Enabled())
	assert.True(t, got.DeepL.Enabled())
}

func TestProviderConfig_PartialSections(t *testing.T) {
	content := "mochi:\n  api_key: only-key\n"
	repo, path := newTestProviderRepo(t)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "only-key", cfg.Mochi.APIKey)
	// key without a selected deck is not enough to export
	assert.False(t, cfg.Mochi.Enabled())
	assert.False(t, cfg.DeepL.Enabled())
}

func TestProviderConfig_SaveIsPrivate(t *testing.T) {
	repo, path := newTestProviderRepo(t)

	require.NoError(t, repo.Save(context.Background(), models.ProviderConfig{
		DeepL: models.DeepLConfig{APIKey: "secret"},
	}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestProviderConfig_SaveOverwrites(t *testing.T) {
	repo, _ := newTestProviderRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, models.ProviderConfig{
		DeepL: models.DeepLConfig{APIKey: "old"},
	}))
	require.NoError(t, repo.Save(ctx, models.ProviderConfig{
		Mochi: models.MochiConfig{APIKey: "new", SelectedDeckID: "d1"},
	}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.DeepL.APIKey)
	assert.Equal(t, "new", got.Mochi.APIKey)
}
