package deactivateaccount

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"selector/internal/core/domain/account"
	"selector/internal/core/services"
	service "selector/internal/core/services/deactivate_account"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func serve(handler http.Handler, url string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(http.MethodPost, "/accounts/{accountID}/deactivation", handler)
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, httptest.NewRequest(http.MethodPost, url, nil))
	return rw
}

func TestDeactivateAccountHandler(t *testing.T) {
	handler := New(services.Func[service.Input, service.Result](
		func(ctx context.Context, input service.Input) (service.Result, error) {
			return service.Result{Account: account.Account{ID: input.AccountID, Username: "ada"}}, nil
		},
	))

	rw := serve(handler, "/accounts/5/deactivation")

	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Contains(t, rw.Body.String(), `"is_active":false`)
	assert.Contains(t, rw.Body.String(), `"id":5`)
}

func TestDeactivateAccountHandlerErrors(t *testing.T) {
	handler := New(services.Func[service.Input, service.Result](
		func(ctx context.Context, input service.Input) (service.Result, error) {
			return service.Result{}, account.ErrAccountDoesNotExist
		},
	))

	assert.Equal(t, http.StatusNotFound, serve(handler, "/accounts/5/deactivation").Code)
	assert.Equal(t, http.StatusBadRequest, serve(handler, "/accounts/x/deactivation").Code)
}
