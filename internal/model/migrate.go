package model

import "gorm.io/gorm"

// Migrate creates the notes, tags and note_tags tables if they do not exist
// yet. Safe to call repeatedly; existing schema is left untouched.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Note{},
		&Tag{},
		&NoteTag{},
	)
}
