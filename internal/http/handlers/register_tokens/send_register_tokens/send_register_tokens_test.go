package sendregistertokens

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"selector/internal/core/domain/account"
	"selector/internal/core/domain/registration"
	"selector/internal/core/services"
	service "selector/internal/core/services/send_register_tokens"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newHandler(sent []registration.RegisterToken, err error) *Handler {
	return New(services.Func[service.Input, service.Result](
		func(ctx context.Context, input service.Input) (service.Result, error) {
			return service.Result{Sent: sent}, err
		},
	))
}

func serve(handler http.Handler, url string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(http.MethodPost, "/accounts/{accountID}/register_tokens/send", handler)
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, httptest.NewRequest(http.MethodPost, url, nil))
	return rw
}

func TestSendRegisterTokensHandler(t *testing.T) {
	sent := []registration.RegisterToken{
		{ID: 1, AccountID: 7, Token: "first", Method: registration.MethodEmail, Sent: true},
		{ID: 2, AccountID: 7, Token: "second", Method: registration.MethodEmail, Sent: true},
	}

	rw := serve(newHandler(sent, nil), "/accounts/7/register_tokens/send")

	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Contains(t, rw.Body.String(), `"id":1`)
	assert.Contains(t, rw.Body.String(), `"id":2`)
	assert.NotContains(t, rw.Body.String(), "first")
}

func TestSendRegisterTokensHandlerNothingToSend(t *testing.T) {
	rw := serve(newHandler(nil, nil), "/accounts/7/register_tokens/send")

	assert.Equal(t, http.StatusOK, rw.Code)
	assert.JSONEq(t, `{"sent": []}`, rw.Body.String())
}

func TestSendRegisterTokensHandlerErrors(t *testing.T) {
	cases := []struct {
		url            string
		err            error
		expectedStatus int
	}{
		{url: "/accounts/x/register_tokens/send", expectedStatus: http.StatusBadRequest},
		{url: "/accounts/7/register_tokens/send", err: account.ErrAccountDoesNotExist, expectedStatus: http.StatusNotFound},
		{url: "/accounts/7/register_tokens/send", err: errors.New("smtp is down"), expectedStatus: http.StatusBadGateway},
	}

	for _, testcase := range cases {
		rw := serve(newHandler(nil, testcase.err), testcase.url)
		assert.Equal(t, testcase.expectedStatus, rw.Code)
	}
}
