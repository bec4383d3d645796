package response

import (
	"time"

	"selector/internal/core/domain/registration"
)

// RegisterToken never carries the token string, it is delivered out of band.
type RegisterToken struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	Method    string    `json:"method"`
	IssuedAt  time.Time `json:"issued_at"`
	Sent      bool      `json:"sent"`
}

func (t *RegisterToken) FromDomainRegisterToken(dt registration.RegisterToken) {
	t.ID = int64(dt.ID)
	t.AccountID = int64(dt.AccountID)
	t.Method = string(dt.Method)
	t.IssuedAt = dt.IssuedAt
	t.Sent = dt.Sent
}

func RegisterTokens(tokens []registration.RegisterToken) []RegisterToken {
	encoded := make([]RegisterToken, 0, len(tokens))
	for _, dt := range tokens {
		var t RegisterToken
		t.FromDomainRegisterToken(dt)
		encoded = append(encoded, t)
	}
	return encoded
}
