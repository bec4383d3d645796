package getaccount

import (
	"errors"
	"net/http"
	"strconv"

	"selector/internal/core/domain/account"
	e "selector/internal/core/domain/errors"
	"selector/internal/core/services"
	service "selector/internal/core/services/get_account"
	"selector/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Account response.Account `json:"account"`
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

	var a response.Account
	a.FromDomainAccount(result.Account)
	response.Render(rw, Result{Account: a}, http.StatusOK)
}
