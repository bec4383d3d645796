package registration

import (
	"fmt"
	"time"

	"selector/internal/core/domain/account"
	e "selector/internal/core/domain/errors"
)

const TokenLength = 30

type ID int64

type Token string

type Method string

const MethodEmail Method = "email"

// RegisterToken is issued to an account and delivered to it out of band. Sent only
// ever moves from false to true.
type RegisterToken struct {
	ID        ID
	AccountID account.ID
	Token     Token
	Method    Method
	IssuedAt  time.Time
	Sent      bool
}

func New(accountID account.ID, method Method) RegisterToken {
	return RegisterToken{AccountID: accountID, Method: method}
}

func (t *RegisterToken) IsPersisted() bool {
	return t.ID != 0
}

// EnsureToken generates the token string when it has not been set yet.
func (t *RegisterToken) EnsureToken(generator TokenGenerator) {
	if t.Token != "" {
		return
	}
	t.Token = generator.GenerateRegisterToken()
}

func (t *RegisterToken) MarkSent() {
	t.Sent = true
}

func (t *RegisterToken) CheckState() error {
	if t.Token == "" {
		return e.NewInvalidStateError(fmt.Sprintf("register token %d has empty token string", t.ID))
	}
	return nil
}

type TokenGenerator interface {
	GenerateRegisterToken() Token
}
