package mapper

import (
	"encoding/json"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/entity"
	"github.com/heversonalves/canon/internal/model"
)

type HomileticsMapper struct{}

func NewHomileticsMapper() *HomileticsMapper {
	return &HomileticsMapper{}
}

func (m *HomileticsMapper) FromPayload(p *dto.HomileticsPayload) *entity.HomileticsOutline {
	if p == nil {
		return nil
	}
	return &entity.HomileticsOutline{
		Id:           p.Id,
		CentralIdea:  p.CentralIdea,
		Divisions:    p.Divisions,
		Applications: p.Applications,
	}
}

func (m *HomileticsMapper) ToPayload(o *entity.HomileticsOutline) *dto.HomileticsPayload {
	if o == nil {
		return nil
	}
	divisions := o.Divisions
	if divisions == nil {
		divisions = []map[string]interface{}{}
	}
	applications := o.Applications
	if applications == nil {
		applications = []map[string]interface{}{}
	}
	return &dto.HomileticsPayload{
		Id:           o.Id,
		CentralIdea:  o.CentralIdea,
		Divisions:    divisions,
		Applications: applications,
	}
}

func (m *HomileticsMapper) ToModel(o *entity.HomileticsOutline) (*model.HomileticsOutline, error) {
	divisionsJson, err := json.Marshal(o.Divisions)
	if err != nil {
		return nil, err
	}
	applicationsJson, err := json.Marshal(o.Applications)
	if err != nil {
		return nil, err
	}
	return &model.HomileticsOutline{
		Id:               o.Id,
		CentralIdea:      o.CentralIdea,
		DivisionsJson:    divisionsJson,
		ApplicationsJson: applicationsJson,
		UpdatedAt:        o.UpdatedAt,
	}, nil
}

func (m *HomileticsMapper) ToEntity(mod *model.HomileticsOutline) (*entity.HomileticsOutline, error) {
	if mod == nil {
		return nil, nil
	}
	out := entity.HomileticsOutline{
		Id:          mod.Id,
		CentralIdea: mod.CentralIdea,
		UpdatedAt:   mod.UpdatedAt,
	}
	if err := json.Unmarshal(mod.DivisionsJson, &out.Divisions); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(mod.ApplicationsJson, &out.Applications); err != nil {
		return nil, err
	}
	return &out, nil
}
