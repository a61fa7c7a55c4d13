package models

// ProviderConfig holds the persisted per-provider credential and selection
// state. Each section is optional: a zero section means the provider was not
// configured and its capability is disabled for the session.
type ProviderConfig struct {
	// Mochi configures the remote flashcard export provider.
	Mochi MochiConfig `yaml:"mochi,omitempty"`

	// DeepL configures the premium translation provider.
	DeepL DeepLConfig `yaml:"deepl,omitempty"`
}

// MochiConfig holds the Mochi export provider state.
type MochiConfig struct {
	// APIKey authenticates against the Mochi HTTP API.
	APIKey string `yaml:"api_key,omitempty"`

	// SelectedDeckID is the deck that new cards are exported into.
	SelectedDeckID string `yaml:"selected_deck_id,omitempty"`
}

// Enabled reports whether the Mochi integration is fully configured:
// both an API key and a selected deck are required before export is attempted.
func (c MochiConfig) Enabled() bool {
	return c.APIKey != "" && c.SelectedDeckID != ""
}

// DeepLConfig holds the DeepL translation provider state.
type DeepLConfig struct {
	// APIKey authenticates against the DeepL HTTP API.
	APIKey string `yaml:"api_key,omitempty"`
}

// Enabled reports whether the DeepL integration is configured.
// When enabled, DeepL is preferred over the free provider for the whole
// session.
func (c DeepLConfig) Enabled() bool {
	return c.APIKey != ""
}
