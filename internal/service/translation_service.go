package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/mapper"
	"github.com/heversonalves/canon/internal/repository/unitofwork"
)

type ITranslationService interface {
	Upload(ctx context.Context, req *dto.TranslationUploadRequest) (*dto.TranslationSummary, error)
	List(ctx context.Context) ([]*dto.TranslationSummary, error)
	GetData(ctx context.Context, id string) (json.RawMessage, error)
	Delete(ctx context.Context, id string) error
}

// ChapterCacheInvalidator drops cached chapters for a translation whose
// package changed. IBibleService satisfies it.
type ChapterCacheInvalidator interface {
	InvalidateTranslation(translation string)
}

type translationService struct {
	uowFactory  unitofwork.RepositoryFactory
	mapper      *mapper.TranslationMapper
	invalidator ChapterCacheInvalidator
}

func NewTranslationService(uowFactory unitofwork.RepositoryFactory, invalidator ChapterCacheInvalidator) ITranslationService {
	return &translationService{
		uowFactory:  uowFactory,
		mapper:      mapper.NewTranslationMapper(),
		invalidator: invalidator,
	}
}

func (s *translationService) Upload(ctx context.Context, req *dto.TranslationUploadRequest) (*dto.TranslationSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	translation := s.mapper.FromUpload(req)
	translation.CreatedAt = time.Now().UTC()

	if err := uow.TranslationRepository().Upsert(ctx, translation); err != nil {
		return nil, err
	}
	if s.invalidator != nil {
		s.invalidator.InvalidateTranslation(translation.Id)
	}
	return s.mapper.ToSummary(translation), nil
}

func (s *translationService) List(ctx context.Context) ([]*dto.TranslationSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	translations, err := uow.TranslationRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.TranslationSummary, len(translations))
	for i, t := range translations {
		summaries[i] = s.mapper.ToSummary(t)
	}
	return summaries, nil
}

func (s *translationService) GetData(ctx context.Context, id string) (json.RawMessage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	translation, err := uow.TranslationRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if translation == nil {
		return nil, ErrTranslationNotFound
	}
	return json.RawMessage(translation.Data), nil
}

func (s *translationService) Delete(ctx context.Context, id string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TranslationRepository().Delete(ctx, id); err != nil {
		return err
	}
	if s.invalidator != nil {
		s.invalidator.InvalidateTranslation(id)
	}
	return nil
}
