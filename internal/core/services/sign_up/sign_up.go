package signup

import (
	"context"
	"errors"
	"time"

	"selector/internal/core/domain/account"
	c "selector/internal/core/domain/common"
	e "selector/internal/core/domain/errors"
	"selector/internal/core/domain/logging"
	"selector/internal/core/domain/registration"
	uow "selector/internal/core/domain/unit_of_work"
	"selector/internal/core/services"
)

type Input struct {
	Username  account.Username
	FirstName string
	LastName  string
	Email     c.Email
	Password  c.Optional[account.RawPassword]
}

type Result struct {
	Account account.Account
	Tokens  []registration.RegisterToken
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher account.PasswordHasher
	generator      registration.TokenGenerator
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher account.PasswordHasher,
	generator registration.TokenGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if generator == nil {
		panic(e.NewNilArgumentError("generator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		generator:      generator,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	candidate := account.Account{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
	if err = candidate.Validate(); err != nil {
		return result, err
	}

	passwordHash := c.NewOptional(account.PasswordHash(""), false)
	if input.Password.IsPresent {
		hash, err := s.passwordHasher.HashPassword(input.Password.Value)
		if err != nil {
			s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
			return result, err
		}
		passwordHash = c.Some(hash)
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	_, err = uow.Accounts().GetByUsername(ctx, input.Username)
	if err == nil {
		s.log.Info(ctx, "Account with the username already exists.", logging.Entry("username", input.Username))
		return result, account.ErrUsernameAlreadyExists
	}
	if !errors.Is(err, account.ErrAccountDoesNotExist) {
		logging.Error(ctx, s.log, err, logging.Entry("username", input.Username))
		return result, err
	}

	created, err := uow.Accounts().Create(ctx, account.CreateInput{
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: passwordHash,
		IsActive:     true,
		DateJoined:   s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrUsernameAlreadyExists) {
		s.log.Info(ctx, "Account with the username already exists.", logging.Entry("username", input.Username))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new account.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	tokens, err := registration.IssueTokens(ctx, uow.RegisterTokens(), s.generator, created.ID, s.now)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountId", created.ID))
		return result, err
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New account has been created.",
		logging.Entry("accountId", created.ID),
		logging.Entry("username", created.Username),
	)
	return Result{Account: created, Tokens: tokens}, nil
}
