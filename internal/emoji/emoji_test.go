package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForMatchesKeyword(t *testing.T) {
	assert.Equal(t, "🍗", For("Grilled Chicken Thighs"))
	assert.Equal(t, "🧄", For("garlic"))
	assert.Equal(t, "🍚", For("Fried Rice"))
}

func TestForFirstKeywordWins(t *testing.T) {
	// "chicken" precedes "rice" in the table, so a name containing both
	// resolves to the chicken glyph.
	assert.Equal(t, "🍗", For("Chicken Fried Rice"))
	// "fish" precedes "sauce".
	assert.Equal(t, "🐟", For("fish sauce"))
}

func TestForIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, For("TOMATO"), For("tomato"))
}

func TestForDefault(t *testing.T) {
	assert.Equal(t, Default, For(""))
	assert.Equal(t, Default, For("mystery item"))
}

func TestForTotal(t *testing.T) {
	inputs := []string{"", "a", "chicken", "üñïçödé", "  ", "12345"}
	for _, in := range inputs {
		assert.NotEmpty(t, For(in))
	}
}
