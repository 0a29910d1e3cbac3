package mapper

import (
	"encoding/json"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/model"
)

type CurationMapper struct{}

func NewCurationMapper() *CurationMapper {
	return &CurationMapper{}
}

func (m *CurationMapper) SourceFromPayload(p *dto.CurationSourcePayload) *entity.CurationSource {
	if p == nil {
		return nil
	}
	return &entity.CurationSource{
		Id:           p.Id,
		Name:         p.Name,
		Url:          p.Url,
		Tradition:    p.Tradition,
		MaterialType: p.MaterialType,
		Frequency:    p.Frequency,
		Weight:       p.Weight,
		Active:       p.Active,
	}
}

func (m *CurationMapper) SourceToPayload(s *entity.CurationSource) *dto.CurationSourcePayload {
	if s == nil {
		return nil
	}
	return &dto.CurationSourcePayload{
		Id:           s.Id,
		Name:         s.Name,
		Url:          s.Url,
		Tradition:    s.Tradition,
		MaterialType: s.MaterialType,
		Frequency:    s.Frequency,
		Weight:       s.Weight,
		Active:       s.Active,
	}
}

func (m *CurationMapper) SourceToModel(s *entity.CurationSource) *model.CurationSource {
	return &model.CurationSource{
		Id:           s.Id,
		Name:         s.Name,
		Url:          s.Url,
		Tradition:    s.Tradition,
		MaterialType: s.MaterialType,
		Frequency:    s.Frequency,
		Weight:       s.Weight,
		Active:       s.Active,
		CreatedAt:    s.CreatedAt,
	}
}

func (m *CurationMapper) SourceToEntity(mod *model.CurationSource) *entity.CurationSource {
	if mod == nil {
		return nil
	}
	return &entity.CurationSource{
		Id:           mod.Id,
		Name:         mod.Name,
		Url:          mod.Url,
		Tradition:    mod.Tradition,
		MaterialType: mod.MaterialType,
		Frequency:    mod.Frequency,
		Weight:       mod.Weight,
		Active:       mod.Active,
		CreatedAt:    mod.CreatedAt,
	}
}

func (m *CurationMapper) ItemFromPayload(p *dto.CurationItemPayload) *entity.CurationItem {
	if p == nil {
		return nil
	}
	return &entity.CurationItem{
		Id:            p.Id,
		Title:         p.Title,
		Author:        p.Author,
		Institution:   p.Institution,
		Tags:          append([]string{}, p.Tags...),
		MaterialLevel: p.MaterialLevel,
		Abstract:      p.Abstract,
		PublishedAt:   p.PublishedAt,
		SourceId:      p.SourceId,
	}
}

func (m *CurationMapper) ItemToPayload(it *entity.CurationItem) *dto.CurationItemPayload {
	if it == nil {
		return nil
	}
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.CurationItemPayload{
		Id:            it.Id,
		Title:         it.Title,
		Author:        it.Author,
		Institution:   it.Institution,
		Tags:          append([]string{}, tags...),
		MaterialLevel: it.MaterialLevel,
		Abstract:      it.Abstract,
		PublishedAt:   it.PublishedAt,
		SourceId:      it.SourceId,
	}
}

func (m *CurationMapper) ItemToModel(it *entity.CurationItem) (*model.CurationItem, error) {
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJson, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return &model.CurationItem{
		Id:            it.Id,
		Title:         it.Title,
		Author:        it.Author,
		Institution:   it.Institution,
		TagsJson:      tagsJson,
		MaterialLevel: it.MaterialLevel,
		Abstract:      it.Abstract,
		PublishedAt:   it.PublishedAt,
		SourceId:      it.SourceId,
		CreatedAt:     it.CreatedAt,
	}, nil
}

func (m *CurationMapper) ItemToEntity(mod *model.CurationItem) (*entity.CurationItem, error) {
	if mod == nil {
		return nil, nil
	}
	out := entity.CurationItem{
		Id:            mod.Id,
		Title:         mod.Title,
		Author:        mod.Author,
		Institution:   mod.Institution,
		MaterialLevel: mod.MaterialLevel,
		Abstract:      mod.Abstract,
		PublishedAt:   mod.PublishedAt,
		SourceId:      mod.SourceId,
		CreatedAt:     mod.CreatedAt,
	}
	if err := json.Unmarshal(mod.TagsJson, &out.Tags); err != nil {
		return nil, err
	}
	return &out, nil
}
