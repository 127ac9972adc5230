package models

// Suggestion is a transient search candidate shown while the user types.
// Suggestions are recomputed wholesale on every query change and never
// persisted. Product-pool entries carry a back-reference to their source
// record; the Category field is a display label only.
type Suggestion struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Type     string   `json:"type"`
	Category string   `json:"category,omitempty"`
	Product  *Product `json:"product,omitempty"`
}
