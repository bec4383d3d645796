package deactivateaccount

import (
	"context"
	"errors"

	"selector/internal/core/domain/account"
	e "selector/internal/core/domain/errors"
	"selector/internal/core/domain/logging"
	uow "selector/internal/core/domain/unit_of_work"
	"selector/internal/core/services"
)

type Input struct {
	AccountID account.ID
}

type Result struct {
	Account account.Account
}

type service struct {
	log logging.Logger
	uow uow.UnitOfWork
}

func New(log logging.Logger, uow uow.UnitOfWork) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if uow == nil {
		panic(e.NewNilArgumentError("uow"))
	}
	return &service{log: log, uow: uow}
}

// Run flips the active flag off. Accounts are never deleted.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.uow.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	a, err := uow.Accounts().GetByID(ctx, input.AccountID)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountId", input.AccountID))
		return result, err
	}
	if !a.IsActive {
		return Result{Account: a}, nil
	}

	a.Deactivate()
	updated, err := uow.Accounts().Update(ctx, account.UpdateInput{
		ID:               a.ID,
		DoIsActiveUpdate: true,
		IsActive:         a.IsActive,
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not deactivate account.",
			logging.Entry("accountId", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Account has been deactivated.", logging.Entry("accountId", a.ID))
	return Result{Account: updated}, nil
}
