package specification

import "gorm.io/gorm"

// SearchText filters notes whose title or content contains the query as a
// substring. Matching is case-insensitive for ASCII (sqlite LIKE semantics).
type SearchText struct {
	Query string
}

func (s SearchText) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("(notes.title LIKE ? OR notes.content LIKE ?)", pattern, pattern)
}

// ByCategory filters notes by exact category match
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.category = ?", s.Category)
}

// HasTag restricts to notes associated with a tag of that exact name.
// The tag name is unique and the (note_id, tag_id) pair is unique, so the
// join yields at most one row per note.
type HasTag struct {
	Name string
}

func (s HasTag) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN note_tags ON note_tags.note_id = notes.id").
		Joins("JOIN tags ON tags.id = note_tags.tag_id").
		Where("tags.name = ?", s.Name)
}

// ListOrder is the fixed listing order: most recently touched first,
// creation time as the tie breaker.
func ListOrder() []Specification {
	return []Specification{
		OrderBy{Field: "notes.updated_at", Desc: true},
		OrderBy{Field: "notes.created_at", Desc: true},
	}
}
