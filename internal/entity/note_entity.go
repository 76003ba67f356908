package entity

import (
	"time"
)

type Note struct {
	Id        uint
	Title     string
	Content   string
	Category  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
