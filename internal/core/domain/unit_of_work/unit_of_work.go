package uow

import (
	"context"

	"selector/internal/core/domain/account"
	"selector/internal/core/domain/registration"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Accounts() account.Repository
	RegisterTokens() registration.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
