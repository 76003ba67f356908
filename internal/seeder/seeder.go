package seeder

import (
	"context"

	"notes-be/internal/dto"
	"notes-be/internal/repository/unitofwork"
	"notes-be/internal/service"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

var samples = []dto.CreateNoteRequest{
	{
		Title:    "Welcome to Notes",
		Content:  "This is your first note. You can edit or delete it.",
		Category: strPtr("general"),
		Tags:     []string{"welcome", "getting-started"},
	},
	{
		Title:    "Grocery List",
		Content:  "- Milk\n- Eggs\n- Bread\n- Coffee",
		Category: strPtr("personal"),
		Tags:     []string{"list", "errands"},
	},
	{
		Title:    "Project Ideas",
		Content:  "1. Build a notes app\n2. Add tagging\n3. Add search",
		Category: strPtr("work"),
		Tags:     []string{"ideas", "work"},
	},
}

// Seed populates the store with a few demo notes. A non-empty store is left
// untouched. Returns the number of notes created.
func Seed(ctx context.Context, db *gorm.DB) (int, error) {
	uowFactory := unitofwork.NewRepositoryFactory(db)

	count, err := uowFactory.NewUnitOfWork(ctx).NoteRepository().Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	noteService := service.NewNoteService(uowFactory, nil, nil)
	for i := range samples {
		if _, err := noteService.Create(ctx, &samples[i]); err != nil {
			return i, err
		}
	}
	return len(samples), nil
}
