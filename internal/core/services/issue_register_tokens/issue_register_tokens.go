package issueregistertokens

import (
	"context"
	"errors"
	"time"

	"selector/internal/core/domain/account"
	e "selector/internal/core/domain/errors"
	"selector/internal/core/domain/logging"
	"selector/internal/core/domain/registration"
	uow "selector/internal/core/domain/unit_of_work"
	"selector/internal/core/services"
)

type Input struct {
	AccountID account.ID
}

type Result struct {
	Tokens []registration.RegisterToken
}

type service struct {
	log       logging.Logger
	uow       uow.UnitOfWork
	generator registration.TokenGenerator
	now       func() time.Time
}

func New(
	log logging.Logger,
	uow uow.UnitOfWork,
	generator registration.TokenGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if uow == nil {
		panic(e.NewNilArgumentError("uow"))
	}
	if generator == nil {
		panic(e.NewNilArgumentError("generator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:       log,
		uow:       uow,
		generator: generator,
		now:       now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.uow.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	a, err := uow.Accounts().GetByID(ctx, input.AccountID)
	if errors.Is(err, context.Canceled) || errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account.",
			logging.Entry("accountId", input.AccountID),
			logging.Entry("err", err),
		)
		return result, err
	}

	tokens, err := registration.IssueTokens(ctx, uow.RegisterTokens(), s.generator, a.ID, s.now)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue register tokens.",
			logging.Entry("accountId", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Register tokens have been issued.",
		logging.Entry("accountId", a.ID),
		logging.Entry("count", len(tokens)),
	)
	return Result{Tokens: tokens}, nil
}
