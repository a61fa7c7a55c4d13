package models

import "time"

// Card represents a single bilingual flashcard.
// It is the primary persistence model of the application: every successful
// translation produces exactly one Card, appended to the local card file.
type Card struct {
	// ID is the unique identifier of the card within the local store.
	// IDs are assigned by the store at append time, start at 1, grow
	// strictly and are never reused.
	ID int64 `yaml:"id"`

	// Front is the source-language text the user entered.
	Front string `yaml:"front"`

	// Back is the translated text returned by the translation provider.
	Back string `yaml:"back"`

	// CreatedAt is the timestamp when the card was created.
	// It is set once by the store and never changes afterwards.
	CreatedAt time.Time `yaml:"created_at"`

	// LanguagePair records the translation direction of the card.
	LanguagePair LanguagePair `yaml:"language_pair"`
}
