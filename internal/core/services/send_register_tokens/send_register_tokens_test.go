package sendregistertokens

import (
	"context"
	"testing"
	"time"

	"selector/internal/core/domain/account"
	c "selector/internal/core/domain/common"
	"selector/internal/core/domain/logging"
	"selector/internal/core/domain/registration"
	"selector/internal/core/services"
	"selector/internal/implementations/email"

	"github.com/stretchr/testify/suite"
)

const (
	SUBJECT = "Confirm your registration"
	FROM    = "register@example.com"
)

var NOW = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger    *logging.FakeLogger
	Accounts  *account.FakeRepository
	Tokens    *registration.FakeRepository
	Generator *registration.FakeTokenGenerator
	Renderer  *registration.FakeRenderer
	Mailer    *account.FakeMailer
	Account   account.Account
	Service   services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Accounts = account.NewFakeRepository()
	suite.Tokens = registration.NewFakeRepository()
	suite.Generator = registration.NewFakeTokenGenerator("token-")
	suite.Renderer = registration.NewFakeRenderer()
	suite.Mailer = account.NewFakeMailer()
	suite.Service = New(
		suite.Logger,
		suite.Accounts,
		suite.Tokens,
		suite.Generator,
		suite.Renderer,
		suite.Mailer,
		registration.EmailSettings{Subject: SUBJECT, From: FROM},
		func() time.Time { return NOW },
	)

	a, err := suite.Accounts.Create(context.Background(), account.CreateInput{
		Username:   "ada",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      c.Email("ada@example.com"),
		IsActive:   true,
		DateJoined: NOW,
	})
	suite.Require().Nil(err)
	suite.Account = a
}

func TestSendRegisterTokensService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createToken(method registration.Method, sent bool) registration.RegisterToken {
	t, err := suite.Tokens.Create(context.Background(), registration.CreateInput{
		AccountID: suite.Account.ID,
		Token:     suite.Generator.GenerateRegisterToken(),
		Method:    method,
		IssuedAt:  NOW,
		Sent:      sent,
	})
	suite.Require().Nil(err)
	return t
}

func (suite *testSuite) TestOnlyUnsentTokensAreDelivered() {
	suite.createToken(registration.MethodEmail, false)
	suite.createToken(registration.MethodEmail, true)
	suite.createToken(registration.MethodEmail, false)

	result, err := suite.Service.Run(context.Background(), Input{AccountID: suite.Account.ID})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(result.Sent, 2)
	assert.Equal(2, suite.Mailer.SentCount())

	tokens, err := suite.Tokens.ListByAccount(context.Background(), suite.Account.ID)
	assert.Nil(err)
	assert.Len(tokens, 3)
	for _, t := range tokens {
		assert.True(t.Sent)
	}
}

func (suite *testSuite) TestMailContent() {
	token := suite.createToken(registration.MethodEmail, false)

	_, err := suite.Service.Run(context.Background(), Input{AccountID: suite.Account.ID})

	assert := suite.Require()
	assert.Nil(err)
	mail := suite.Mailer.LastSent()
	assert.Equal(SUBJECT, mail.Subject)
	assert.Equal(c.Some(c.Email(FROM)), mail.From)
	assert.Equal([]c.Email{"ada@example.com"}, mail.To)

	assert.Len(suite.Renderer.Rendered, 1)
	rendered := suite.Renderer.Rendered[0]
	assert.Equal(registration.EmailTemplate, rendered.Name)
	assert.Equal(string(token.Token), rendered.Data[registration.ContextRegisterToken])
	assert.Equal(NOW, rendered.Data[registration.ContextIssuedAt])
	user, ok := rendered.Data[registration.ContextUser].(*account.Account)
	assert.True(ok)
	assert.Equal(suite.Account.ID, user.ID)
}

func (suite *testSuite) TestUnknownMethodIsSkipped() {
	suite.createToken(registration.Method("sms"), false)

	result, err := suite.Service.Run(context.Background(), Input{AccountID: suite.Account.ID})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(result.Sent, 0)
	assert.Equal(0, suite.Mailer.SentCount())
	tokens, _ := suite.Tokens.ListByAccount(context.Background(), suite.Account.ID)
	assert.False(tokens[0].Sent)
}

func (suite *testSuite) TestSecondRunSendsNothing() {
	suite.createToken(registration.MethodEmail, false)
	ctx := context.Background()

	_, err := suite.Service.Run(ctx, Input{AccountID: suite.Account.ID})
	suite.Require().Nil(err)
	result, err := suite.Service.Run(ctx, Input{AccountID: suite.Account.ID})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(result.Sent, 0)
	assert.Equal(1, suite.Mailer.SentCount())
}

func (suite *testSuite) TestMailerErrorKeepsTokenUnsent() {
	suite.createToken(registration.MethodEmail, false)
	suite.Mailer.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{AccountID: suite.Account.ID})

	assert := suite.Require()
	assert.NotNil(err)
	tokens, _ := suite.Tokens.ListUnsent(context.Background(), suite.Account.ID)
	assert.Len(tokens, 1)
	assert.Equal(0, suite.Tokens.MarkSentCalled)

	suite.Mailer.ReturnError = false
	result, err := suite.Service.Run(context.Background(), Input{AccountID: suite.Account.ID})
	assert.Nil(err)
	assert.Len(result.Sent, 1)
}

func (suite *testSuite) TestRendererErrorKeepsTokenUnsent() {
	suite.createToken(registration.MethodEmail, false)
	suite.Renderer.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{AccountID: suite.Account.ID})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(0, suite.Mailer.SentCount())
	tokens, _ := suite.Tokens.ListUnsent(context.Background(), suite.Account.ID)
	assert.Len(tokens, 1)
}

func (suite *testSuite) TestAccountDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{AccountID: account.ID(1000)})

	suite.Require().ErrorIs(err, account.ErrAccountDoesNotExist)
	suite.Require().Equal(0, suite.Mailer.SentCount())
}

func (suite *testSuite) TestTokenStringIsNotRegenerated() {
	token := suite.createToken(registration.MethodEmail, false)
	callsBefore := suite.Generator.Calls

	result, err := suite.Service.Run(context.Background(), Input{AccountID: suite.Account.ID})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(token.Token, result.Sent[0].Token)
	assert.Equal(callsBefore, suite.Generator.Calls)
}

func (suite *testSuite) TestAccountWithoutEmail() {
	a, err := suite.Accounts.Create(context.Background(), account.CreateInput{
		Username:   "grace",
		IsActive:   true,
		DateJoined: NOW,
	})
	suite.Require().Nil(err)
	suite.Require().Nil(a.Validate())
	_, err = suite.Tokens.Create(context.Background(), registration.CreateInput{
		AccountID: a.ID,
		Token:     suite.Generator.GenerateRegisterToken(),
		Method:    registration.MethodEmail,
		IssuedAt:  NOW,
	})
	suite.Require().Nil(err)
	service := New(
		suite.Logger,
		suite.Accounts,
		suite.Tokens,
		suite.Generator,
		suite.Renderer,
		email.NewLogMailer(suite.Logger, FROM),
		registration.EmailSettings{Subject: SUBJECT, From: FROM},
		func() time.Time { return NOW },
	)

	result, err := service.Run(context.Background(), Input{AccountID: a.ID})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(result.Sent, 1)
	unsent, err := suite.Tokens.ListUnsent(context.Background(), a.ID)
	assert.Nil(err)
	assert.Len(unsent, 0)
	assert.Equal(0, suite.Logger.CountByLevel(logging.ERROR))

	result, err = service.Run(context.Background(), Input{AccountID: a.ID})
	assert.Nil(err)
	assert.Len(result.Sent, 0)
}
