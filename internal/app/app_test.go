package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"selector/internal/app/services"
	"selector/internal/core/domain/account"
	"selector/internal/core/domain/logging"
	"selector/internal/core/domain/registration"
	uow "selector/internal/core/domain/unit_of_work"
	deactivateaccount "selector/internal/core/services/deactivate_account"
	getaccount "selector/internal/core/services/get_account"
	issueregistertokens "selector/internal/core/services/issue_register_tokens"
	sendregistertokens "selector/internal/core/services/send_register_tokens"
	signup "selector/internal/core/services/sign_up"
	templaterenderer "selector/internal/implementations/template_renderer"

	"github.com/stretchr/testify/suite"
)

var NOW = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	unitOfWork *uow.FakeUnitOfWork
	mailer     *account.FakeMailer
	scheduler  *registration.FakeDispatchScheduler
	router     http.Handler
}

func (suite *testSuite) SetupTest() {
	log := logging.NewFakeLogger()
	now := func() time.Time { return NOW }
	generator := registration.NewFakeTokenGenerator("token-")
	renderer, err := templaterenderer.New()
	suite.Require().Nil(err)

	suite.unitOfWork = uow.NewFakeUnitOfWork()
	suite.mailer = account.NewFakeMailer()
	suite.scheduler = registration.NewFakeDispatchScheduler()
	accounts := suite.unitOfWork.Context.AccountRepository
	tokens := suite.unitOfWork.Context.RegisterTokenRepository

	s := &services.Services{
		SignUp: signup.NewWithTokenDispatching(
			log,
			suite.scheduler,
			signup.New(log, suite.unitOfWork, account.NewFakePasswordHasher(), generator, now),
		),
		GetAccount:          getaccount.New(log, accounts),
		DeactivateAccount:   deactivateaccount.New(log, suite.unitOfWork),
		IssueRegisterTokens: issueregistertokens.New(log, suite.unitOfWork, generator, now),
		SendRegisterTokens: sendregistertokens.New(
			log,
			accounts,
			tokens,
			generator,
			renderer,
			suite.mailer,
			registration.EmailSettings{Subject: "Registration", From: "register@example.com"},
			now,
		),
	}
	suite.router = NewRouter(s, []string{"*"}, true)
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) do(method string, url string, body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	suite.router.ServeHTTP(rw, httptest.NewRequest(method, url, strings.NewReader(body)))
	return rw
}

func (suite *testSuite) TestRegistrationFlow() {
	assert := suite.Require()

	rw := suite.do(http.MethodPost, "/accounts", `{"username": "ada", "first_name": "Ada", "email": "ada@example.com"}`)
	assert.Equal(http.StatusCreated, rw.Code)
	assert.Equal("token-1", rw.Header().Get("x-test-register-token"))
	assert.Equal([]account.ID{1}, suite.scheduler.Scheduled)

	rw = suite.do(http.MethodPost, "/accounts/1/register_tokens", "")
	assert.Equal(http.StatusCreated, rw.Code)
	assert.Equal("token-2", rw.Header().Get("x-test-register-token"))

	rw = suite.do(http.MethodPost, "/accounts/1/register_tokens/send", "")
	assert.Equal(http.StatusOK, rw.Code)
	assert.Equal(2, suite.mailer.SentCount())
	mail := suite.mailer.LastSent()
	assert.Equal("Registration", mail.Subject)
	assert.Contains(mail.Body, "token-2")

	rw = suite.do(http.MethodPost, "/accounts/1/register_tokens/send", "")
	assert.Equal(http.StatusOK, rw.Code)
	assert.JSONEq(`{"sent": []}`, rw.Body.String())
	assert.Equal(2, suite.mailer.SentCount())
}

func (suite *testSuite) TestDuplicateUsername() {
	body := `{"username": "ada"}`
	suite.Require().Equal(http.StatusCreated, suite.do(http.MethodPost, "/accounts", body).Code)

	rw := suite.do(http.MethodPost, "/accounts", body)

	suite.Require().Equal(http.StatusUnprocessableEntity, rw.Code)
	suite.Require().Len(suite.unitOfWork.Context.AccountRepository.Accounts, 1)
}

func (suite *testSuite) TestInvalidUsername() {
	rw := suite.do(http.MethodPost, "/accounts", `{"username": "ada lovelace"}`)

	suite.Require().Equal(http.StatusBadRequest, rw.Code)
	suite.Require().Len(suite.unitOfWork.Context.AccountRepository.Accounts, 0)
}

func (suite *testSuite) TestGetAndDeactivateAccount() {
	assert := suite.Require()
	assert.Equal(http.StatusCreated, suite.do(http.MethodPost, "/accounts", `{"username": "ada"}`).Code)

	rw := suite.do(http.MethodGet, "/accounts/1", "")
	assert.Equal(http.StatusOK, rw.Code)
	assert.Contains(rw.Body.String(), `"is_active":true`)

	rw = suite.do(http.MethodPost, "/accounts/1/deactivation", "")
	assert.Equal(http.StatusOK, rw.Code)
	assert.Contains(rw.Body.String(), `"is_active":false`)

	assert.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/accounts/2", "").Code)
	assert.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/accounts/abc", "").Code)
}
