package service

import (
	"context"
	"time"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/mapper"
	"github.com/heversonalves/canon/internal/repository/specification"
	"github.com/heversonalves/canon/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context, source string) ([]*dto.NotePayload, error)
	Save(ctx context.Context, payload *dto.NotePayload) (*dto.NotePayload, error)
	Delete(ctx context.Context, id string) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.NoteMapper
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		mapper:     mapper.NewNoteMapper(),
	}
}

func (s *noteService) List(ctx context.Context, source string) ([]*dto.NotePayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if source != "" {
		specs = append(specs, specification.NoteBySource{Source: source})
	}

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	payloads := make([]*dto.NotePayload, len(notes))
	for i, n := range notes {
		payloads[i] = s.mapper.ToPayload(n)
	}
	return payloads, nil
}

func (s *noteService) Save(ctx context.Context, payload *dto.NotePayload) (*dto.NotePayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := s.mapper.FromPayload(payload)
	if note.Id == "" {
		note.Id = uuid.NewString()
	}
	if note.CreatedAt == nil {
		now := time.Now().UTC().Format(time.RFC3339)
		note.CreatedAt = &now
	}

	if err := uow.NoteRepository().Upsert(ctx, note); err != nil {
		return nil, err
	}
	return s.mapper.ToPayload(note), nil
}

// Delete is idempotent; removing a note that no longer exists is not an error.
func (s *noteService) Delete(ctx context.Context, id string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NoteRepository().Delete(ctx, id)
}
