package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguagePair(t *testing.T) {
	for _, valid := range []string{"en-es", "es-en"} {
		pair, err := ParseLanguagePair(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, pair.String())
	}

	for _, invalid := range []string{"", "fr-en", "en-fr", "EN-ES", "en_es", "es"} {
		_, err := ParseLanguagePair(invalid)
		assert.Error(t, err, "pair %q", invalid)
	}
}

func TestLanguagePair_SourceTarget(t *testing.T) {
	assert.Equal(t, "en", EnglishToSpanish.Source())
	assert.Equal(t, "es", EnglishToSpanish.Target())
	assert.Equal(t, "es", SpanishToEnglish.Source())
	assert.Equal(t, "en", SpanishToEnglish.Target())
}

func TestLanguagePair_Inverse(t *testing.T) {
	assert.Equal(t, SpanishToEnglish, EnglishToSpanish.Inverse())
	assert.Equal(t, EnglishToSpanish, SpanishToEnglish.Inverse())
}
