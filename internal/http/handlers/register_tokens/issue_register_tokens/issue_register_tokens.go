package issueregistertokens

import (
	"errors"
	"net/http"
	"strconv"

	"selector/internal/core/domain/account"
	e "selector/internal/core/domain/errors"
	"selector/internal/core/services"
	service "selector/internal/core/services/issue_register_tokens"
	"selector/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

const TestRegisterTokenHeader = "x-test-register-token"

type Handler struct {
	service    services.Service[service.Input, service.Result]
	isTestMode bool
}

func New(service services.Service[service.Input, service.Result], isTestMode bool) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Result struct {
	Tokens []response.RegisterToken `json:"tokens"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		response.RenderInvalidAccountID(rw)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{AccountID: account.ID(accountID)})
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		response.RenderError(rw, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode && len(result.Tokens) > 0 {
		rw.Header().Set(TestRegisterTokenHeader, string(result.Tokens[0].Token))
	}
	response.Render(rw, Result{Tokens: response.RegisterTokens(result.Tokens)}, http.StatusCreated)
}
