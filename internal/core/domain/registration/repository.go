package registration

import (
	"context"
	"time"

	"selector/internal/core/domain/account"
)

type CreateInput struct {
	AccountID account.ID
	Token     Token
	Method    Method
	IssuedAt  time.Time
	Sent      bool
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (RegisterToken, error)
	// MarkSent flags the token as sent. The token string is never rewritten.
	MarkSent(ctx context.Context, id ID) (RegisterToken, error)
	ListUnsent(ctx context.Context, accountID account.ID) ([]RegisterToken, error)
}
