package app

import (
	"fmt"
	"net/http"

	"selector/internal/app/deps"
	"selector/internal/app/services"
	deactivateaccount "selector/internal/http/handlers/accounts/deactivate_account"
	getaccount "selector/internal/http/handlers/accounts/get_account"
	signup "selector/internal/http/handlers/accounts/sign_up"
	issueregistertokens "selector/internal/http/handlers/register_tokens/issue_register_tokens"
	sendregistertokens "selector/internal/http/handlers/register_tokens/send_register_tokens"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter serves the account API. It carries no authentication and is meant to
// be reachable only from trusted internal callers.
func NewRouter(s *services.Services, allowedOrigins []string, isTestMode bool) http.Handler {
	accountsRouter := chi.NewRouter()
	accountsRouter.Method(http.MethodPost, "/", signup.New(s.SignUp, isTestMode))
	accountsRouter.Method(http.MethodGet, "/{accountID:[0-9]+}", getaccount.New(s.GetAccount))
	accountsRouter.Method(
		http.MethodPost,
		"/{accountID:[0-9]+}/deactivation",
		deactivateaccount.New(s.DeactivateAccount),
	)
	accountsRouter.Method(
		http.MethodPost,
		"/{accountID:[0-9]+}/register_tokens",
		issueregistertokens.New(s.IssueRegisterTokens, isTestMode),
	)
	accountsRouter.Method(
		http.MethodPost,
		"/{accountID:[0-9]+}/register_tokens/send",
		sendregistertokens.New(s.SendRegisterTokens),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{signup.TestRegisterTokenHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/accounts", accountsRouter)
	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler: NewRouter(s, deps.Config.AllowedOrigins, deps.Config.IsTestMode),
		Addr:    fmt.Sprintf("0.0.0.0:%d", deps.Config.Port),
	}
}
