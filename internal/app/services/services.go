package services

import (
	"selector/internal/app/deps"
	"selector/internal/core/services"
	deactivateaccount "selector/internal/core/services/deactivate_account"
	getaccount "selector/internal/core/services/get_account"
	issueregistertokens "selector/internal/core/services/issue_register_tokens"
	sendregistertokens "selector/internal/core/services/send_register_tokens"
	signup "selector/internal/core/services/sign_up"
)

type Services struct {
	SignUp            services.Service[signup.Input, signup.Result]
	GetAccount        services.Service[getaccount.Input, getaccount.Result]
	DeactivateAccount services.Service[deactivateaccount.Input, deactivateaccount.Result]

	IssueRegisterTokens services.Service[issueregistertokens.Input, issueregistertokens.Result]
	SendRegisterTokens  services.Service[sendregistertokens.Input, sendregistertokens.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.NewWithTokenDispatching(
		deps.Logger,
		deps.DispatchScheduler,
		signup.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.RegisterTokenGenerator,
			deps.Now,
		),
	)
	s.GetAccount = getaccount.New(deps.Logger, deps.AccountRepository)
	s.DeactivateAccount = deactivateaccount.New(deps.Logger, deps.UnitOfWork)

	s.IssueRegisterTokens = issueregistertokens.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.RegisterTokenGenerator,
		deps.Now,
	)
	s.SendRegisterTokens = sendregistertokens.New(
		deps.Logger,
		deps.AccountRepository,
		deps.RegisterTokenRepository,
		deps.RegisterTokenGenerator,
		deps.RegisterEmailRenderer,
		deps.Mailer,
		deps.RegisterEmailSettings,
		deps.Now,
	)

	return s
}
