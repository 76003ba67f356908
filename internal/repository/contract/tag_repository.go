package contract

import (
	"context"
)

type TagRepository interface {
	// ResolveOrCreate maps tag names to ids, creating missing tags. Names are
	// trimmed, empty-after-trim names are skipped, input order is preserved
	// and duplicates are NOT collapsed (duplicate names yield duplicate ids).
	ResolveOrCreate(ctx context.Context, names []string) ([]uint, error)
	// NamesForNote returns the sorted, deduplicated tag names of a note.
	NamesForNote(ctx context.Context, noteId uint) ([]string, error)
	// ReplaceForNote swaps the full tag set of a note and returns the
	// resulting sorted, deduplicated names. An empty list clears all tags.
	ReplaceForNote(ctx context.Context, noteId uint, names []string) ([]string, error)
	// ListAllNames returns every tag name in the system, sorted.
	ListAllNames(ctx context.Context) ([]string, error)
}
