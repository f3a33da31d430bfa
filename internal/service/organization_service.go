package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"nko-content-assistant/internal/dto"
	"nko-content-assistant/internal/entity"
	"nko-content-assistant/internal/repository/specification"
	"nko-content-assistant/internal/repository/unitofwork"
	"nko-content-assistant/pkg/events"
)

type IOrganizationService interface {
	GetAll(ctx context.Context) ([]*dto.OrganizationResponse, error)
	Get(ctx context.Context, id uint) (*entity.Organization, error)
	GetByName(ctx context.Context, name string) (*entity.Organization, error)
	Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*dto.CreateOrganizationResponse, error)
	ExamplePosts(ctx context.Context, orgID uint) ([]string, error)
	Posts(ctx context.Context, orgID uint) ([]*dto.PostResponse, error)
}

type organizationService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewOrganizationService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IOrganizationService {
	return &organizationService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (c *organizationService) GetAll(ctx context.Context) ([]*dto.OrganizationResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	orgs, err := uow.OrganizationRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		result = append(result, &dto.OrganizationResponse{
			Id:          org.Id,
			Name:        org.Name,
			Description: org.Description,
			CreatedAt:   org.CreatedAt,
		})
	}
	return result, nil
}

func (c *organizationService) Get(ctx context.Context, id uint) (*entity.Organization, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.OrganizationRepository().FindOne(ctx, specification.ByOrgID{OrgID: id})
}

func (c *organizationService) GetByName(ctx context.Context, name string) (*entity.Organization, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.OrganizationRepository().FindOne(ctx, specification.ByOrgName{Name: name})
}

// Create inserts the organization and, when style examples were
// provided, an example post in the same transaction so a failed example
// write never leaves a half-registered organization.
func (c *organizationService) Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*dto.CreateOrganizationResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	org := entity.Organization{
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := uow.OrganizationRepository().Create(ctx, &org); err != nil {
		uow.Rollback()
		return nil, err
	}

	examples := strings.TrimSpace(strings.Join(req.Examples, "\n"))
	if examples != "" {
		post := entity.Post{
			OrgId:     org.Id,
			PostType:  entity.PostTypeExample,
			Content:   examples,
			CreatedAt: time.Now(),
		}
		if err := uow.PostRepository().Create(ctx, &post); err != nil {
			uow.Rollback()
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.publishEvent(ctx, events.NewOrganizationCreated(org.Id, org.Name))

	return &dto.CreateOrganizationResponse{Id: org.Id}, nil
}

// ExamplePosts returns example-post contents used as style references
// by the prompt compiler.
func (c *organizationService) ExamplePosts(ctx context.Context, orgID uint) ([]string, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	posts, err := uow.PostRepository().FindAll(ctx,
		specification.PostsOfOrg{OrgID: orgID},
		specification.ByPostType{PostType: entity.PostTypeExample},
	)
	if err != nil {
		return nil, err
	}

	contents := make([]string, 0, len(posts))
	for _, p := range posts {
		contents = append(contents, p.Content)
	}
	return contents, nil
}

func (c *organizationService) Posts(ctx context.Context, orgID uint) ([]*dto.PostResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	posts, err := uow.PostRepository().FindAll(ctx,
		specification.PostsOfOrg{OrgID: orgID},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		result = append(result, &dto.PostResponse{
			Id:          p.Id,
			PostType:    p.PostType,
			Content:     p.Content,
			Goal:        p.Goal,
			ImagePrompt: p.ImagePrompt,
			CreatedAt:   p.CreatedAt,
		})
	}
	return result, nil
}

func (c *organizationService) publishEvent(ctx context.Context, evt events.Event) {
	if c.publisherService == nil {
		return
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	// Audit is best effort, a publish failure never fails the request.
	_ = c.publisherService.Publish(ctx, payload)
}
