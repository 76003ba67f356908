package contract

import (
	"context"

	"notes-be/internal/entity"
	"notes-be/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	// Update writes only the given columns; updated_at is refreshed by the
	// storage layer whenever at least one column is written.
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	// Touch refreshes updated_at without writing any other column.
	Touch(ctx context.Context, id uint) error
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id uint) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
