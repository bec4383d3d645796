package getaccount

import (
	"context"
	"errors"

	"selector/internal/core/domain/account"
	e "selector/internal/core/domain/errors"
	"selector/internal/core/domain/logging"
	"selector/internal/core/services"
)

type Input struct {
	AccountID account.ID
}

type Result struct {
	Account account.Account
}

type service struct {
	log      logging.Logger
	accounts account.Repository
}

func New(log logging.Logger, accounts account.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accounts == nil {
		panic(e.NewNilArgumentError("accounts"))
	}
	return &service{log: log, accounts: accounts}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accounts.GetByID(ctx, input.AccountID)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountId", input.AccountID))
		return result, err
	}
	return Result{Account: a}, nil
}
