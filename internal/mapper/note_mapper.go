package mapper

import (
	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) FromPayload(p *dto.NotePayload) *entity.Note {
	if p == nil {
		return nil
	}
	return &entity.Note{
		Id:        p.Id,
		Source:    p.Source,
		Content:   p.Content,
		Context:   p.Context,
		Pinned:    p.Pinned,
		CreatedAt: p.CreatedAt,
	}
}

func (m *NoteMapper) ToPayload(n *entity.Note) *dto.NotePayload {
	if n == nil {
		return nil
	}
	return &dto.NotePayload{
		Id:        n.Id,
		Source:    n.Source,
		Content:   n.Content,
		Context:   n.Context,
		Pinned:    n.Pinned,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	createdAt := ""
	if n.CreatedAt != nil {
		createdAt = *n.CreatedAt
	}
	return &model.Note{
		Id:        n.Id,
		Source:    n.Source,
		Content:   n.Content,
		Context:   n.Context,
		Pinned:    n.Pinned,
		CreatedAt: createdAt,
	}
}

func (m *NoteMapper) ToEntity(mod *model.Note) *entity.Note {
	if mod == nil {
		return nil
	}
	var createdAt *string
	if mod.CreatedAt != "" {
		t := mod.CreatedAt
		createdAt = &t
	}
	return &entity.Note{
		Id:        mod.Id,
		Source:    mod.Source,
		Content:   mod.Content,
		Context:   mod.Context,
		Pinned:    mod.Pinned,
		CreatedAt: createdAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
