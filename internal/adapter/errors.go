package adapter

import "errors"

// Sentinel errors shared by all provider adapters. Concrete failures wrap
// one of these so callers can match with [errors.Is] without knowing which
// backend served the session.
var (
	// ErrTranslationUnavailable is returned when a translation backend is
	// unreachable, responds with a non-success status, or produces an
	// empty or error-flagged result. Recoverable: the user may retry.
	ErrTranslationUnavailable = errors.New("translation unavailable")

	// ErrAuthentication is returned when a premium service rejects the
	// configured credential. Recoverable by re-running setup.
	ErrAuthentication = errors.New("credential rejected")

	// ErrRemoteUnavailable is returned when the export service is
	// unreachable or failing. The locally saved card is unaffected.
	ErrRemoteUnavailable = errors.New("export service unavailable")
)
