package uow

import (
	"context"

	"selector/internal/core/domain/account"
	"selector/internal/core/domain/registration"
)

type FakeUnitOfWorkContext struct {
	AccountRepository       *account.FakeRepository
	RegisterTokenRepository *registration.FakeRepository
	WasRollbackCalled       bool
	WasCommitCalled         bool
	ReturnCommitError       bool
}

func NewFakeUnitOfWorkContext(
	accountRepository *account.FakeRepository,
	registerTokenRepository *registration.FakeRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		AccountRepository:       accountRepository,
		RegisterTokenRepository: registerTokenRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	if c.ReturnCommitError {
		return context.DeadlineExceeded
	}
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Accounts() account.Repository {
	return c.AccountRepository
}

func (c *FakeUnitOfWorkContext) RegisterTokens() registration.Repository {
	return c.RegisterTokenRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			account.NewFakeRepository(),
			registration.NewFakeRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
