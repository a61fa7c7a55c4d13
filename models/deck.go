package models

// Deck describes a deck in the remote flashcard service.
// Decks are listed during setup so the user can pick the one that newly
// created cards are exported into.
type Deck struct {
	// ID is the remote identifier of the deck.
	ID string `json:"id"`

	// Name is the human-readable deck name shown in the picker.
	Name string `json:"name"`
}
