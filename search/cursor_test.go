package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahil-jamadar/new-couture-project/models"
)

func cursorSuggestions() []models.Suggestion {
	return []models.Suggestion{
		{ID: "a", Title: "First", Type: TypeProduct},
		{ID: "b", Title: "Second", Type: TypeMaterial},
		{ID: "c", Title: "Third", Type: TypeBrand},
	}
}

func TestCursorStartsUnselected(t *testing.T) {
	c := NewCursor(cursorSuggestions())

	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestCursorNextWrapsAround(t *testing.T) {
	c := NewCursor(cursorSuggestions())

	c.Next()
	s, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", s.ID)

	c.Next()
	c.Next()
	s, _ = c.Selected()
	assert.Equal(t, "c", s.ID)

	c.Next()
	s, _ = c.Selected()
	assert.Equal(t, "a", s.ID)
}

func TestCursorPrevWrapsFromUnselected(t *testing.T) {
	c := NewCursor(cursorSuggestions())

	c.Prev()
	s, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "c", s.ID)

	c.Prev()
	s, _ = c.Selected()
	assert.Equal(t, "b", s.ID)
}

func TestCursorDismissClearsSelection(t *testing.T) {
	c := NewCursor(cursorSuggestions())

	c.Next()
	c.Dismiss()
	_, ok := c.Selected()
	assert.False(t, ok)

	// Navigation after a dismissal starts from the top again.
	c.Next()
	s, _ := c.Selected()
	assert.Equal(t, "a", s.ID)
}

func TestCursorEmptyListNeverSelects(t *testing.T) {
	c := NewCursor(nil)

	c.Next()
	c.Prev()
	_, ok := c.Selected()
	assert.False(t, ok)
}
