package model

// NoteTag links notes and tags many-to-many. The composite primary key keeps
// each (note, tag) pair unique; both foreign keys cascade on delete so
// removing a note (or a tag) removes its association rows at the engine level.
type NoteTag struct {
	NoteId uint `gorm:"primaryKey;autoIncrement:false"`
	TagId  uint `gorm:"primaryKey;autoIncrement:false"`

	Note Note `gorm:"constraint:OnDelete:CASCADE"`
	Tag  Tag  `gorm:"constraint:OnDelete:CASCADE"`
}

func (NoteTag) TableName() string {
	return "note_tags"
}
