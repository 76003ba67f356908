package model

type Tag struct {
	Id   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(64);not null;uniqueIndex"`
}

func (Tag) TableName() string {
	return "tags"
}
