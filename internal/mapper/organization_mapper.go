package mapper

import (
	"nko-content-assistant/internal/entity"
	"nko-content-assistant/internal/model"
)

type OrganizationMapper struct{}

func NewOrganizationMapper() *OrganizationMapper {
	return &OrganizationMapper{}
}

func (m *OrganizationMapper) ToEntity(o *model.Organization) *entity.Organization {
	if o == nil {
		return nil
	}
	return &entity.Organization{
		Id:          o.Id,
		Name:        o.Name,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
	}
}

func (m *OrganizationMapper) ToModel(o *entity.Organization) *model.Organization {
	if o == nil {
		return nil
	}
	return &model.Organization{
		Id:          o.Id,
		Name:        o.Name,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
	}
}

func (m *OrganizationMapper) ToEntities(orgs []*model.Organization) []*entity.Organization {
	entities := make([]*entity.Organization, len(orgs))
	for i, o := range orgs {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
