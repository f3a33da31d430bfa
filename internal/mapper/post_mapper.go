package mapper

import (
	"nko-content-assistant/internal/entity"
	"nko-content-assistant/internal/model"
)

type PostMapper struct{}

func NewPostMapper() *PostMapper {
	return &PostMapper{}
}

func (m *PostMapper) ToEntity(p *model.Post) *entity.Post {
	if p == nil {
		return nil
	}
	return &entity.Post{
		Id:          p.Id,
		OrgId:       p.OrgId,
		PostType:    p.PostType,
		Content:     p.Content,
		Goal:        p.Goal,
		Audience:    p.Audience,
		Tone:        p.Tone,
		Details:     p.Details,
		CTA:         p.CTA,
		Nuances:     p.Nuances,
		ImagePrompt: p.ImagePrompt,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *PostMapper) ToModel(p *entity.Post) *model.Post {
	if p == nil {
		return nil
	}
	return &model.Post{
		Id:          p.Id,
		OrgId:       p.OrgId,
		PostType:    p.PostType,
		Content:     p.Content,
		Goal:        p.Goal,
		Audience:    p.Audience,
		Tone:        p.Tone,
		Details:     p.Details,
		CTA:         p.CTA,
		Nuances:     p.Nuances,
		ImagePrompt: p.ImagePrompt,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *PostMapper) ToEntities(posts []*model.Post) []*entity.Post {
	entities := make([]*entity.Post, len(posts))
	for i, p := range posts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
