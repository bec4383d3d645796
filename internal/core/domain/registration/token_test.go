package registration

import (
	"context"
	"testing"
	"time"

	"selector/internal/core/domain/account"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const ACCOUNT_ID = account.ID(7)

var NOW = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type persistSuite struct {
	suite.Suite
	repo      *FakeRepository
	generator *FakeTokenGenerator
}

func (s *persistSuite) SetupTest() {
	s.repo = NewFakeRepository()
	s.generator = NewFakeTokenGenerator("token-")
}

func TestPersist(t *testing.T) {
	suite.Run(t, new(persistSuite))
}

func (s *persistSuite) persist(t *RegisterToken) error {
	return Persist(context.Background(), s.repo, s.generator, t, func() time.Time { return NOW })
}

func (s *persistSuite) TestFirstPersistGeneratesToken() {
	t := New(ACCOUNT_ID, MethodEmail)

	err := s.persist(&t)

	s.Nil(err)
	s.True(t.IsPersisted())
	s.Equal(Token("token-1"), t.Token)
	s.Equal(NOW, t.IssuedAt)
	s.False(t.Sent)
	s.Len(s.repo.Tokens, 1)
}

func (s *persistSuite) TestSecondPersistKeepsToken() {
	t := New(ACCOUNT_ID, MethodEmail)
	s.Require().Nil(s.persist(&t))
	first := t.Token

	s.Nil(s.persist(&t))
	t.MarkSent()
	s.Nil(s.persist(&t))

	s.Equal(first, t.Token)
	s.True(t.Sent)
	s.Equal(1, s.generator.Calls)
	s.Len(s.repo.Tokens, 1)
	s.Equal(first, s.repo.Tokens[0].Token)
}

func (s *persistSuite) TestPresetTokenIsNotRegenerated() {
	t := New(ACCOUNT_ID, MethodEmail)
	t.Token = "preset"

	s.Nil(s.persist(&t))

	s.Equal(Token("preset"), t.Token)
	s.Equal(0, s.generator.Calls)
}

func (s *persistSuite) TestPersistUnsentTokenDoesNotWrite() {
	t := New(ACCOUNT_ID, MethodEmail)
	s.Require().Nil(s.persist(&t))

	s.Nil(s.persist(&t))

	s.Equal(0, s.repo.MarkSentCalled)
}

func (s *persistSuite) TestRepositoryError() {
	s.repo.ReturnError = true
	t := New(ACCOUNT_ID, MethodEmail)

	err := s.persist(&t)

	s.NotNil(err)
	s.False(t.IsPersisted())
}

func (s *persistSuite) TestEmptyGeneratedTokenIsRejected() {
	t := New(ACCOUNT_ID, MethodEmail)

	err := Persist(context.Background(), s.repo, emptyGenerator{}, &t, func() time.Time { return NOW })

	s.ErrorIs(err, ErrEmptyToken)
	s.Len(s.repo.Tokens, 0)
}

type emptyGenerator struct{}

func (emptyGenerator) GenerateRegisterToken() Token { return "" }

func TestEmailContext(t *testing.T) {
	a := account.Account{ID: ACCOUNT_ID, Username: "ada", FirstName: "Ada"}
	token := RegisterToken{AccountID: ACCOUNT_ID, Token: "abc", IssuedAt: NOW}

	data := EmailContext(a, token)

	assert := require.New(t)
	assert.Len(data, 3)
	assert.Equal("abc", data[ContextRegisterToken])
	assert.Equal(NOW, data[ContextIssuedAt])
	user, ok := data[ContextUser].(*account.Account)
	assert.True(ok)
	assert.Equal("Ada", user.FullName())
}

func (s *persistSuite) TestIssueTokensCreatesExactlyOne() {
	for i := 1; i <= 3; i++ {
		tokens, err := IssueTokens(context.Background(), s.repo, s.generator, ACCOUNT_ID, func() time.Time { return NOW })

		s.Nil(err)
		s.Len(tokens, 1)
		s.Equal(MethodEmail, tokens[0].Method)
		s.False(tokens[0].Sent)
		s.NotEmpty(tokens[0].Token)
		s.Len(s.repo.Tokens, i)
	}
}
