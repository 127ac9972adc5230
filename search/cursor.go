package search

import "github.com/sahil-jamadar/new-couture-project/models"

// Cursor tracks the highlighted entry while stepping through a suggestion
// list. Navigation wraps circularly in both directions; an index of -1 means
// nothing is highlighted, which is the state after creation and after a
// dismissal.
type Cursor struct {
	suggestions []models.Suggestion
	index       int
}

func NewCursor(suggestions []models.Suggestion) *Cursor {
	return &Cursor{suggestions: suggestions, index: -1}
}

// Next moves the highlight down, wrapping from the last entry to the first.
func (c *Cursor) Next() {
	if len(c.suggestions) == 0 {
		return
	}
	if c.index < len(c.suggestions)-1 {
		c.index++
	} else {
		c.index = 0
	}
}

// Prev moves the highlight up, wrapping from the first entry to the last.
func (c *Cursor) Prev() {
	if len(c.suggestions) == 0 {
		return
	}
	if c.index > 0 {
		c.index--
	} else {
		c.index = len(c.suggestions) - 1
	}
}

// Selected returns the highlighted suggestion, if any. When nothing is
// highlighted the caller falls back to a plain free-text search.
func (c *Cursor) Selected() (models.Suggestion, bool) {
	if c.index < 0 || c.index >= len(c.suggestions) {
		return models.Suggestion{}, false
	}
	return c.suggestions[c.index], true
}

// Dismiss drops the highlight without touching the query text.
func (c *Cursor) Dismiss() {
	c.index = -1
}
