package contract

import (
	"context"

	"nko-content-assistant/internal/entity"
	"nko-content-assistant/internal/repository/specification"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Organization, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Organization, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
