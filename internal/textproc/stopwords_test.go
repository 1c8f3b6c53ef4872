package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopwordsLanguages(t *testing.T) {
	t.Parallel()

	for _, lang := range []string{"english", "en", "English", "spanish", "es", "french", "fr"} {
		set, err := Stopwords(lang)
		require.NoErrorf(t, err, "Stopwords(%q)", lang)
		assert.NotEmptyf(t, set, "Stopwords(%q)", lang)
	}

	english, err := Stopwords("english")
	require.NoError(t, err)
	assert.Contains(t, english, "the")
	assert.Contains(t, english, "isn't")
	assert.NotContains(t, english, "sentence")
}

func TestStopwordsUnknownLanguage(t *testing.T) {
	t.Parallel()

	_, err := Stopwords("klingon")
	assert.Error(t, err)
}

func TestRemoveStopwords(t *testing.T) {
	t.Parallel()

	original := []string{"the", "quick", "brown", "fox", "is", "not", "a", "dog"}
	duplicate := []string{"the", "quick", "brown", "fox", "is", "not", "a", "dog"}

	kept, err := RemoveStopwords(original, "english")
	require.NoError(t, err)
	assert.Equal(t, []string{"quick", "brown", "fox", "dog"}, kept)
	assert.Equal(t, duplicate, original, "input must not be mutated")
}

func TestRemoveStopwordsUnknownLanguage(t *testing.T) {
	t.Parallel()

	_, err := RemoveStopwords([]string{"word"}, "klingon")
	assert.Error(t, err)
}
