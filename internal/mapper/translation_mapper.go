package mapper

import (
	"time"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/model"
)

type TranslationMapper struct{}

func NewTranslationMapper() *TranslationMapper {
	return &TranslationMapper{}
}

func (m *TranslationMapper) FromUpload(req *dto.TranslationUploadRequest) *entity.BibleTranslation {
	if req == nil {
		return nil
	}
	return &entity.BibleTranslation{
		Id:           req.Id,
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		Data:         req.Data,
	}
}

func (m *TranslationMapper) ToSummary(t *entity.BibleTranslation) *dto.TranslationSummary {
	if t == nil {
		return nil
	}
	return &dto.TranslationSummary{
		Id:           t.Id,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		CreatedAt:    t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (m *TranslationMapper) ToModel(t *entity.BibleTranslation) *model.BibleTranslation {
	return &model.BibleTranslation{
		Id:           t.Id,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		DataJson:     t.Data,
		CreatedAt:    t.CreatedAt,
	}
}

func (m *TranslationMapper) ToEntity(mod *model.BibleTranslation) *entity.BibleTranslation {
	if mod == nil {
		return nil
	}
	return &entity.BibleTranslation{
		Id:           mod.Id,
		Name:         mod.Name,
		Abbreviation: mod.Abbreviation,
		Data:         mod.DataJson,
		CreatedAt:    mod.CreatedAt,
	}
}
