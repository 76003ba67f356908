package service

import (
	"context"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"
	"notes-be/pkg/events"
)

type INoteService interface {
	List(ctx context.Context, query *dto.ListNotesQuery) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Get(ctx context.Context, id uint) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ListTagNames(ctx context.Context) ([]string, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *noteService) List(ctx context.Context, query *dto.ListNotesQuery) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if query.Text != "" {
		specs = append(specs, specification.SearchText{Query: query.Text})
	}
	if query.Category != "" {
		specs = append(specs, specification.ByCategory{Category: query.Category})
	}
	if query.TagName != "" {
		specs = append(specs, specification.HasTag{Name: query.TagName})
	}
	specs = append(specs, specification.ListOrder()...)

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		tags, err := uow.TagRepository().NamesForNote(ctx, note.Id)
		if err != nil {
			return nil, err
		}
		response = append(response, toNoteResponse(note, tags))
	}
	return response, nil
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	note := entity.Note{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	tags := []string{}
	if len(req.Tags) > 0 {
		var err error
		tags, err = uow.TagRepository().ReplaceForNote(ctx, note.Id, req.Tags)
		if err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NoteCreated, &note)

	return toNoteResponse(&note, tags), nil
}

func (s *noteService) Get(ctx context.Context, id uint) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	tags, err := uow.TagRepository().NamesForNote(ctx, note.Id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note, tags), nil
}

func (s *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}

	changes := map[string]interface{}{}
	if req.Title.Set {
		changes["title"] = req.Title.Value
	}
	if req.Content.Set {
		changes["content"] = req.Content.Value
	}
	if req.Category.Set {
		changes["category"] = req.Category.Value
	}

	if len(changes) > 0 {
		if err := uow.NoteRepository().Update(ctx, note.Id, changes); err != nil {
			return nil, err
		}
	}

	if req.Tags.Set {
		names := req.Tags.Value
		if names == nil {
			names = []string{}
		}
		if _, err := uow.TagRepository().ReplaceForNote(ctx, note.Id, names); err != nil {
			return nil, err
		}
		// A tags-only update still changed what the note looks like, so it
		// bumps updated_at and floats the note in the listing order.
		if len(changes) == 0 {
			if err := uow.NoteRepository().Touch(ctx, note.Id); err != nil {
				return nil, err
			}
		}
	}

	updated, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
	if err != nil {
		return nil, err
	}
	tags, err := uow.TagRepository().NamesForNote(ctx, note.Id)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NoteUpdated, updated)

	return toNoteResponse(updated, tags), nil
}

func (s *noteService) Delete(ctx context.Context, id uint) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	// Association rows cascade at the storage level.
	removed, err := uow.NoteRepository().Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}

	if removed {
		s.publish(ctx, events.NoteDeleted, &entity.Note{Id: id})
	}
	return removed, nil
}

func (s *noteService) ListTagNames(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.TagRepository().ListAllNames(ctx)
}

func (s *noteService) publish(ctx context.Context, eventType string, note *entity.Note) {
	if s.publisherService == nil {
		return
	}
	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"note_id": note.Id,
			"title":   note.Title,
		},
		OccurredAt: time.Now(),
	}
	// Auditing is auxiliary; a publish failure never fails the operation.
	if err := s.publisherService.Publish(ctx, evt); err != nil {
		s.logger.Warn("note", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func toNoteResponse(note *entity.Note, tags []string) *dto.NoteResponse {
	if tags == nil {
		tags = []string{}
	}
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		Category:  note.Category,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
		Tags:      tags,
	}
}
