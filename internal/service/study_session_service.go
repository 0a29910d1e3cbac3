package service

import (
	"context"
	"encoding/json"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/mapper"
	"github.com/heversonalves/canon/internal/pkg/logger"
	"github.com/heversonalves/canon/internal/repository/unitofwork"
)

type IStudySessionService interface {
	GetLast(ctx context.Context) (*dto.StudySessionPayload, error)
	GetById(ctx context.Context, id string) (*dto.StudySessionPayload, error)
	Upsert(ctx context.Context, payload *dto.StudySessionPayload) (*dto.StudySessionPayload, error)
}

type studySessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	mapper           *mapper.StudySessionMapper
	logger           logger.ILogger
}

func NewStudySessionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IStudySessionService {
	return &studySessionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		mapper:           mapper.NewStudySessionMapper(),
		logger:           log,
	}
}

func (s *studySessionService) GetLast(ctx context.Context) (*dto.StudySessionPayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.StudySessionRepository().FindLast(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return s.mapper.ToPayload(session), nil
}

func (s *studySessionService) GetById(ctx context.Context, id string) (*dto.StudySessionPayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.StudySessionRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return s.mapper.ToPayload(session), nil
}

// Upsert stores the payload keyed on its id and returns the canonical stored
// session, re-read from the repository so the caller always sees exactly what
// the store holds.
func (s *studySessionService) Upsert(ctx context.Context, payload *dto.StudySessionPayload) (*dto.StudySessionPayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.StudySessionRepository()

	session := s.mapper.FromPayload(payload)
	if err := repo.Upsert(ctx, session); err != nil {
		return nil, err
	}

	stored, err := repo.FindById(ctx, session.Id)
	if err != nil {
		return nil, err
	}
	canonical := s.mapper.ToPayload(stored)

	s.publishSessionUpdated(ctx, canonical)
	return canonical, nil
}

// publishSessionUpdated fans the saved session out to subscribed study views.
// Delivery is auxiliary; a publish failure never fails the save.
func (s *studySessionService) publishSessionUpdated(ctx context.Context, payload *dto.StudySessionPayload) {
	if s.publisherService == nil {
		return
	}

	event := dto.SessionUpdatedMessage{
		Type:    dto.SessionUpdatedEventType,
		Session: *payload,
	}
	raw, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("StudySession", "Failed to encode session update event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, raw); err != nil {
		s.logger.Warn("StudySession", "Failed to publish session update event", map[string]interface{}{"error": err.Error()})
	}
}
