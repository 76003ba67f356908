package implementation

import (
	"context"
	"testing"
	"time"

	"notes-be/internal/entity"
	"notes-be/internal/model"
	"notes-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	category := "work"
	note := entity.Note{Title: "Plan", Content: "ship it", Category: &category}
	require.NoError(t, repo.Create(ctx, &note))
	assert.NotZero(t, note.Id)
	assert.False(t, note.CreatedAt.IsZero())

	found, err := repo.FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Plan", found.Title)
	assert.Equal(t, "ship it", found.Content)
	require.NotNil(t, found.Category)
	assert.Equal(t, "work", *found.Category)

	t.Run("missing id yields nil without error", func(t *testing.T) {
		found, err := repo.FindOne(ctx, specification.ByID{ID: 9999})
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestNoteUpdateRefreshesUpdatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	note := entity.Note{Title: "Before", Content: "body"}
	require.NoError(t, repo.Create(ctx, &note))
	prev := note.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Update(ctx, note.Id, map[string]interface{}{"title": "After"}))

	updated, err := repo.FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.True(t, updated.UpdatedAt.After(prev))
}

func TestNoteTouch(t *testing.T) {
	db := newTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	note := entity.Note{Title: "Touch", Content: "body"}
	require.NoError(t, repo.Create(ctx, &note))
	prev := note.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Touch(ctx, note.Id))

	touched, err := repo.FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	assert.Equal(t, "Touch", touched.Title)
	assert.True(t, touched.UpdatedAt.After(prev))
}

func TestNoteDelete(t *testing.T) {
	db := newTestDB(t)
	noteRepo := NewNoteRepository(db)
	tagRepo := NewTagRepository(db)
	ctx := context.Background()

	note := entity.Note{Title: "Doomed", Content: "body"}
	require.NoError(t, noteRepo.Create(ctx, &note))
	_, err := tagRepo.ReplaceForNote(ctx, note.Id, []string{"a", "b"})
	require.NoError(t, err)

	t.Run("removes the note and cascades associations", func(t *testing.T) {
		removed, err := noteRepo.Delete(ctx, note.Id)
		require.NoError(t, err)
		assert.True(t, removed)

		found, err := noteRepo.FindOne(ctx, specification.ByID{ID: note.Id})
		require.NoError(t, err)
		assert.Nil(t, found)

		var links int64
		require.NoError(t, db.Model(&model.NoteTag{}).Where("note_id = ?", note.Id).Count(&links).Error)
		assert.EqualValues(t, 0, links)

		// Orphaned tag rows survive.
		names, err := tagRepo.ListAllNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, names)
	})

	t.Run("nonexistent id reports false, no error", func(t *testing.T) {
		removed, err := noteRepo.Delete(ctx, 4242)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestNoteFindAllFilters(t *testing.T) {
	db := newTestDB(t)
	noteRepo := NewNoteRepository(db)
	tagRepo := NewTagRepository(db)
	ctx := context.Background()

	work := "work"
	a := entity.Note{Title: "Groceries", Content: "milk, eggs"}
	b := entity.Note{Title: "Work plan", Content: "ship it", Category: &work}
	require.NoError(t, noteRepo.Create(ctx, &a))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, noteRepo.Create(ctx, &b))
	_, err := tagRepo.ReplaceForNote(ctx, a.Id, []string{"errands", "home"})
	require.NoError(t, err)

	t.Run("no filters returns all, most recently touched first", func(t *testing.T) {
		notes, err := noteRepo.FindAll(ctx, specification.ListOrder()...)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, b.Id, notes[0].Id)
		assert.Equal(t, a.Id, notes[1].Id)
	})

	t.Run("text filter matches title or content", func(t *testing.T) {
		byTitle, err := noteRepo.FindAll(ctx, specification.SearchText{Query: "Groc"})
		require.NoError(t, err)
		require.Len(t, byTitle, 1)
		assert.Equal(t, a.Id, byTitle[0].Id)

		byContent, err := noteRepo.FindAll(ctx, specification.SearchText{Query: "ship"})
		require.NoError(t, err)
		require.Len(t, byContent, 1)
		assert.Equal(t, b.Id, byContent[0].Id)
	})

	t.Run("category filter is exact", func(t *testing.T) {
		notes, err := noteRepo.FindAll(ctx, specification.ByCategory{Category: "work"})
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, b.Id, notes[0].Id)

		none, err := noteRepo.FindAll(ctx, specification.ByCategory{Category: "wor"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("tag filter joins the association", func(t *testing.T) {
		notes, err := noteRepo.FindAll(ctx, specification.HasTag{Name: "errands"})
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, a.Id, notes[0].Id)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		notes, err := noteRepo.FindAll(ctx,
			specification.SearchText{Query: "milk"},
			specification.HasTag{Name: "errands"},
		)
		require.NoError(t, err)
		require.Len(t, notes, 1)

		none, err := noteRepo.FindAll(ctx,
			specification.SearchText{Query: "milk"},
			specification.ByCategory{Category: "work"},
		)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
