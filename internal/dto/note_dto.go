package dto

import (
	"time"
)

type ListNotesQuery struct {
	Text     string `query:"q"`
	TagName  string `query:"tag"`
	Category string `query:"category"`
}

type CreateNoteRequest struct {
	Title    string   `json:"title" validate:"required,min=1,max=255"`
	Content  string   `json:"content" validate:"required,min=1"`
	Category *string  `json:"category" validate:"omitempty,max=64"`
	Tags     []string `json:"tags" validate:"omitempty,dive,min=1,max=64"`
}

type UpdateNoteRequest struct {
	Id       uint               `json:"-"`
	Title    Optional[string]   `json:"title"`
	Content  Optional[string]   `json:"content"`
	Category Optional[*string]  `json:"category"`
	Tags     Optional[[]string] `json:"tags"`
}

// Empty reports whether no field at all was present in the request body.
func (r *UpdateNoteRequest) Empty() bool {
	return !r.Title.Set && !r.Content.Set && !r.Category.Set && !r.Tags.Set
}

type NoteResponse struct {
	Id        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tags      []string  `json:"tags"`
}

type ListTagsResponse struct {
	Tags []string `json:"tags"`
}
