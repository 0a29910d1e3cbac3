package service

import (
	"context"
	"time"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/mapper"
	"github.com/heversonalves/canon/internal/repository/unitofwork"
)

// The sermon outline is a singleton; the frontend always edits the same record.
const defaultHomileticsId = "default"

type IHomileticsService interface {
	Get(ctx context.Context) (*dto.HomileticsPayload, error)
	Save(ctx context.Context, payload *dto.HomileticsPayload) (*dto.HomileticsPayload, error)
}

type homileticsService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.HomileticsMapper
}

func NewHomileticsService(uowFactory unitofwork.RepositoryFactory) IHomileticsService {
	return &homileticsService{
		uowFactory: uowFactory,
		mapper:     mapper.NewHomileticsMapper(),
	}
}

func (s *homileticsService) Get(ctx context.Context) (*dto.HomileticsPayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	outline, err := uow.HomileticsRepository().FindById(ctx, defaultHomileticsId)
	if err != nil {
		return nil, err
	}
	if outline == nil {
		return nil, ErrHomileticsNotFound
	}
	return s.mapper.ToPayload(outline), nil
}

func (s *homileticsService) Save(ctx context.Context, payload *dto.HomileticsPayload) (*dto.HomileticsPayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	outline := s.mapper.FromPayload(payload)
	if outline.Id == "" {
		outline.Id = defaultHomileticsId
	}
	outline.UpdatedAt = time.Now().UTC()

	if err := uow.HomileticsRepository().Upsert(ctx, outline); err != nil {
		return nil, err
	}
	return s.mapper.ToPayload(outline), nil
}
