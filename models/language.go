package models

import "fmt"

// LanguagePair identifies a translation direction in "src-dst" form using
// two-letter language codes. Only the English↔Spanish directions are
// supported.
type LanguagePair string

const (
	// EnglishToSpanish translates English source text into Spanish.
	EnglishToSpanish LanguagePair = "en-es"
	// SpanishToEnglish translates Spanish source text into English.
	SpanishToEnglish LanguagePair = "es-en"
)

// ParseLanguagePair validates s and returns it as a LanguagePair.
// Anything other than "en-es" or "es-en" is rejected.
func ParseLanguagePair(s string) (LanguagePair, error) {
	switch LanguagePair(s) {
	case EnglishToSpanish, SpanishToEnglish:
		return LanguagePair(s), nil
	default:
		return "", fmt.Errorf("unknown language pair %q", s)
	}
}

// Source returns the two-letter code of the source language.
func (p LanguagePair) Source() string {
	if p == SpanishToEnglish {
		return "es"
	}
	return "en"
}

// Target returns the two-letter code of the target language.
func (p LanguagePair) Target() string {
	if p == SpanishToEnglish {
		return "en"
	}
	return "es"
}

// Inverse returns the opposite translation direction.
func (p LanguagePair) Inverse() LanguagePair {
	if p == SpanishToEnglish {
		return EnglishToSpanish
	}
	return SpanishToEnglish
}

func (p LanguagePair) String() string {
	return string(p)
}
