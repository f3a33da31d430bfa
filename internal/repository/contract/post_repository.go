package contract

import (
	"context"

	"nko-content-assistant/internal/entity"
	"nko-content-assistant/internal/repository/specification"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
