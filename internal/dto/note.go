package dto

import (
	"github.com/maooe/finance_control_app/internal/core/domain"
)

// CreateNoteRequest defines the data needed to create a sticky note.
type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
	Color   string `json:"color" binding:"required"`
}

// ToDomain converts the request into a domain.Note. The id is left empty;
// the store assigns it.
func (r CreateNoteRequest) ToDomain() domain.Note {
	return domain.Note{
		Content: r.Content,
		Color:   r.Color,
	}
}

// UpdateNoteRequest defines the fields allowed when editing a note in place.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateNoteRequest struct {
	Content *string `json:"content"`
	Color   *string `json:"color"`
}

// ListNotesResponse wraps the note collection, most recent first.
type ListNotesResponse struct {
	Notes []domain.Note `json:"notes"`
}
