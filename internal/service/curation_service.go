package service

import (
	"context"
	"time"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/mapper"
	"github.com/heversonalves/canon/internal/repository/specification"
	"github.com/heversonalves/canon/internal/repository/unitofwork"
)

type ICurationService interface {
	CreateSource(ctx context.Context, payload *dto.CurationSourcePayload) (*dto.CurationSourcePayload, error)
	ListSources(ctx context.Context) ([]*dto.CurationSourcePayload, error)
	CreateItem(ctx context.Context, payload *dto.CurationItemPayload) (*dto.CurationItemPayload, error)
	ListItems(ctx context.Context, sourceId string) ([]*dto.CurationItemPayload, error)
}

type curationService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.CurationMapper
}

func NewCurationService(uowFactory unitofwork.RepositoryFactory) ICurationService {
	return &curationService{
		uowFactory: uowFactory,
		mapper:     mapper.NewCurationMapper(),
	}
}

func (s *curationService) CreateSource(ctx context.Context, payload *dto.CurationSourcePayload) (*dto.CurationSourcePayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	source := s.mapper.SourceFromPayload(payload)
	source.CreatedAt = time.Now().UTC()

	if err := uow.CurationRepository().UpsertSource(ctx, source); err != nil {
		return nil, err
	}
	return s.mapper.SourceToPayload(source), nil
}

func (s *curationService) ListSources(ctx context.Context) ([]*dto.CurationSourcePayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sources, err := uow.CurationRepository().FindSources(ctx)
	if err != nil {
		return nil, err
	}

	payloads := make([]*dto.CurationSourcePayload, len(sources))
	for i, src := range sources {
		payloads[i] = s.mapper.SourceToPayload(src)
	}
	return payloads, nil
}

func (s *curationService) CreateItem(ctx context.Context, payload *dto.CurationItemPayload) (*dto.CurationItemPayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item := s.mapper.ItemFromPayload(payload)
	item.CreatedAt = time.Now().UTC()

	if err := uow.CurationRepository().UpsertItem(ctx, item); err != nil {
		return nil, err
	}
	return s.mapper.ItemToPayload(item), nil
}

func (s *curationService) ListItems(ctx context.Context, sourceId string) ([]*dto.CurationItemPayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "published_at", Desc: true},
	}
	if sourceId != "" {
		specs = append(specs, specification.ItemBySourceId{SourceId: sourceId})
	}

	items, err := uow.CurationRepository().FindItems(ctx, specs...)
	if err != nil {
		return nil, err
	}

	payloads := make([]*dto.CurationItemPayload, len(items))
	for i, it := range items {
		payloads[i] = s.mapper.ItemToPayload(it)
	}
	return payloads, nil
}
