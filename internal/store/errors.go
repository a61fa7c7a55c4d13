package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreCorrupt is returned when the persisted card file exists but
	// cannot be parsed into the card shape: invalid YAML, a record with a
	// missing required key, or a value of the wrong type. It is fatal for
	// the session, since the next card id cannot be derived safely from a
	// partially readable file.
	ErrStoreCorrupt = errors.New("card store is corrupt")

	// ErrEmptyCardSide is returned when Append is called with an empty
	// front or back text. Empty cards are never persisted.
	ErrEmptyCardSide = errors.New("card front and back must be non-empty")
)
