package signup

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"selector/internal/core/domain/account"
	c "selector/internal/core/domain/common"
	e "selector/internal/core/domain/errors"
	"selector/internal/core/services"
	service "selector/internal/core/services/sign_up"
	"selector/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
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

type Input struct {
	Username  string  `json:"username"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  *string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(1, account.MaxUsernameLength)),
		validation.Field(&i.FirstName, validation.Length(0, account.MaxNameLength)),
		validation.Field(&i.LastName, validation.Length(0, account.MaxNameLength)),
		validation.Field(&i.Email, is.Email, validation.Length(0, account.MaxEmailLength)),
		validation.Field(&i.Password, validation.NilOrNotEmpty, validation.Length(6, 256)),
	)
}

type Result struct {
	Account response.Account `json:"account"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	password := c.NewOptional(account.RawPassword(""), false)
	if input.Password != nil {
		password = c.Some(account.RawPassword(*input.Password))
	}

	result, err := h.service.Run(r.Context(), service.Input{
		Username:  account.Username(input.Username),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     c.NewEmail(input.Email),
		Password:  password,
	})
	var errValidation validation.Errors
	switch {
	case err == nil:
	case errors.As(err, &errValidation):
		response.Render(rw, errValidation, http.StatusBadRequest)
		return
	case errors.Is(err, account.ErrUsernameAlreadyExists):
		response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		return
	default:
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode && len(result.Tokens) > 0 {
		rw.Header().Set(TestRegisterTokenHeader, string(result.Tokens[0].Token))
	}
	var a response.Account
	a.FromDomainAccount(result.Account)
	response.Render(rw, Result{Account: a}, http.StatusCreated)
}
