package sendregistertokens

import (
	"context"
	"errors"
	"time"

	"selector/internal/core/domain/account"
	c "selector/internal/core/domain/common"
	e "selector/internal/core/domain/errors"
	"selector/internal/core/domain/logging"
	"selector/internal/core/domain/registration"
	"selector/internal/core/services"
)

type Input struct {
	AccountID account.ID
}

type Result struct {
	Sent []registration.RegisterToken
}

type service struct {
	log       logging.Logger
	accounts  account.Repository
	tokens    registration.Repository
	generator registration.TokenGenerator
	renderer  registration.Renderer
	mailer    account.Mailer
	settings  registration.EmailSettings
	now       func() time.Time
}

func New(
	log logging.Logger,
	accounts account.Repository,
	tokens registration.Repository,
	generator registration.TokenGenerator,
	renderer registration.Renderer,
	mailer account.Mailer,
	settings registration.EmailSettings,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accounts == nil {
		panic(e.NewNilArgumentError("accounts"))
	}
	if tokens == nil {
		panic(e.NewNilArgumentError("tokens"))
	}
	if generator == nil {
		panic(e.NewNilArgumentError("generator"))
	}
	if renderer == nil {
		panic(e.NewNilArgumentError("renderer"))
	}
	if mailer == nil {
		panic(e.NewNilArgumentError("mailer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:       log,
		accounts:  accounts,
		tokens:    tokens,
		generator: generator,
		renderer:  renderer,
		mailer:    mailer,
		settings:  settings,
		now:       now,
	}
}

// Run delivers every unsent token of the account. The first delivery error stops
// the run, tokens that were not delivered stay unsent.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accounts.GetByID(ctx, input.AccountID)
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

	pending, err := s.tokens.ListUnsent(ctx, a.ID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountId", a.ID))
		return result, err
	}

	for ix := range pending {
		t := &pending[ix]
		delivered, err := s.deliver(ctx, a, t)
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		if err != nil {
			s.log.Error(
				ctx,
				"Could not deliver register token.",
				logging.Entry("accountId", a.ID),
				logging.Entry("tokenId", t.ID),
				logging.Entry("err", err),
			)
			return result, err
		}
		if delivered {
			result.Sent = append(result.Sent, *t)
		}
	}

	s.log.Info(
		ctx,
		"Pending register tokens have been dispatched.",
		logging.Entry("accountId", a.ID),
		logging.Entry("pending", len(pending)),
		logging.Entry("sent", len(result.Sent)),
	)
	return result, nil
}

func (s *service) deliver(ctx context.Context, a account.Account, t *registration.RegisterToken) (bool, error) {
	switch t.Method {
	case registration.MethodEmail:
		return true, s.deliverEmail(ctx, a, t)
	default:
		s.log.Debug(
			ctx,
			"Skip register token with unknown delivery method.",
			logging.Entry("tokenId", t.ID),
			logging.Entry("method", t.Method),
		)
		return false, nil
	}
}

func (s *service) deliverEmail(ctx context.Context, a account.Account, t *registration.RegisterToken) error {
	body, err := s.renderer.Render(registration.EmailTemplate, registration.EmailContext(a, *t))
	if err != nil {
		return err
	}

	err = a.Notify(ctx, s.mailer, s.settings.Subject, body, c.Email(s.settings.From))
	if err != nil {
		return err
	}

	t.MarkSent()
	return registration.Persist(ctx, s.tokens, s.generator, t, s.now)
}
