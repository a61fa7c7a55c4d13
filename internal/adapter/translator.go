package adapter

import (
	"github.com/nvaldez/traduz/internal/config"
	"github.com/nvaldez/traduz/internal/logger"
	"github.com/nvaldez/traduz/models"
)

// NewTranslator selects and constructs the translation backend for a
// session. The premium DeepL backend is used when a key is configured,
// otherwise the free MyMemory backend. The choice is made once here: a
// failing premium backend surfaces its errors to the user instead of
// silently degrading to the free one.
func NewTranslator(adapterCfg config.Adapter, providers models.ProviderConfig, logger *logger.Logger) (Translator, error) {
	if providers.DeepL.Enabled() {
		return NewDeepLTranslator(adapterCfg, providers.DeepL.APIKey, logger)
	}

	return NewMyMemoryTranslator(adapterCfg, logger)
}
