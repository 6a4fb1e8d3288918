package domain

// Note is a free-form sticky note. Unlike the other record kinds it is
// mutable in place: content and color can be edited after creation.
type Note struct {
	NoteID  string `json:"id"` // Primary key (UUID)
	Content string `json:"content"`
	Color   string `json:"color"`
}
