package implementation

import (
	"context"
	"errors"
	"strings"

	"notes-be/internal/model"
	"notes-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepositoryImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) contract.TagRepository {
	return &TagRepositoryImpl{
		db: db,
	}
}

func (r *TagRepositoryImpl) ResolveOrCreate(ctx context.Context, names []string) ([]uint, error) {
	ids := make([]uint, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		var tag model.Tag
		err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
		if err == nil {
			ids = append(ids, tag.Id)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		tag = model.Tag{Name: name}
		res := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).
			Create(&tag)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			// Lost an insert race; the unique index kept the winner, read it.
			if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
				return nil, err
			}
		}
		ids = append(ids, tag.Id)
	}
	return ids, nil
}

func (r *TagRepositoryImpl) NamesForNote(ctx context.Context, noteId uint) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).
		Model(&model.Tag{}).
		Distinct().
		Joins("JOIN note_tags ON note_tags.tag_id = tags.id").
		Where("note_tags.note_id = ?", noteId).
		Order("tags.name ASC").
		Pluck("tags.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *TagRepositoryImpl) ReplaceForNote(ctx context.Context, noteId uint, names []string) ([]string, error) {
	if err := r.db.WithContext(ctx).
		Where("note_id = ?", noteId).
		Delete(&model.NoteTag{}).Error; err != nil {
		return nil, err
	}

	ids, err := r.ResolveOrCreate(ctx, names)
	if err != nil {
		return nil, err
	}

	for _, tagId := range ids {
		link := model.NoteTag{NoteId: noteId, TagId: tagId}
		// Duplicate input names produce duplicate ids; the conflict clause
		// silently drops the repeated pairs.
		err := r.db.WithContext(ctx).
			Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&link).Error
		if err != nil {
			return nil, err
		}
	}

	return r.NamesForNote(ctx, noteId)
}

func (r *TagRepositoryImpl) ListAllNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).
		Model(&model.Tag{}).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
