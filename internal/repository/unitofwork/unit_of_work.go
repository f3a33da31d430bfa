package unitofwork

import (
	"context"

	"nko-content-assistant/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	OrganizationRepository() contract.OrganizationRepository
	PostRepository() contract.PostRepository
}
