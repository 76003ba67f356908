package unitofwork

import (
	"context"

	"notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
}
