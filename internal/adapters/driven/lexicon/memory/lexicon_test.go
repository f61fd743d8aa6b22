package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	lexicon := New()
	require.NotNil(t, lexicon)
	var _ driven.Lexicon = lexicon
}

func TestSynonyms(t *testing.T) {
	t.Run("returns registered synonyms", func(t *testing.T) {
		lexicon := New()
		lexicon.Add("happy", "glad", "content")

		synonyms, err := lexicon.Synonyms("happy")

		require.NoError(t, err)
		assert.Equal(t, []string{"glad", "content"}, synonyms)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		lexicon := New()
		lexicon.Add("Happy", "glad")

		synonyms, err := lexicon.Synonyms("HAPPY")

		require.NoError(t, err)
		assert.Equal(t, []string{"glad"}, synonyms)
	})

	t.Run("unknown word yields nothing", func(t *testing.T) {
		synonyms, err := New().Synonyms("absent")

		require.NoError(t, err)
		assert.Empty(t, synonyms)
	})

	t.Run("repeated Add appends", func(t *testing.T) {
		lexicon := New()
		lexicon.Add("happy", "glad")
		lexicon.Add("happy", "content")

		synonyms, err := lexicon.Synonyms("happy")

		require.NoError(t, err)
		assert.Equal(t, []string{"glad", "content"}, synonyms)
	})
}

func TestKnown(t *testing.T) {
	lexicon := New()
	lexicon.Add("happy", "glad")

	assert.True(t, lexicon.Known("happy"))
	assert.True(t, lexicon.Known("HAPPY"))
	assert.False(t, lexicon.Known("glad"))
	assert.False(t, lexicon.Known("absent"))
}
