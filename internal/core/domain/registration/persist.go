package registration

import (
	"context"
	"time"

	"selector/internal/core/domain/account"
)

// Persist stores t. The first call fills in the token string and inserts the row,
// later calls only write the sent flag.
func Persist(
	ctx context.Context,
	repo Repository,
	generator TokenGenerator,
	t *RegisterToken,
	now func() time.Time,
) error {
	t.EnsureToken(generator)
	if t.Token == "" {
		return ErrEmptyToken
	}

	if t.IsPersisted() {
		if !t.Sent {
			return nil
		}
		stored, err := repo.MarkSent(ctx, t.ID)
		if err != nil {
			return err
		}
		*t = stored
		return nil
	}

	if t.IssuedAt.IsZero() {
		t.IssuedAt = now()
	}
	created, err := repo.Create(ctx, CreateInput{
		AccountID: t.AccountID,
		Token:     t.Token,
		Method:    t.Method,
		IssuedAt:  t.IssuedAt,
		Sent:      t.Sent,
	})
	if err != nil {
		return err
	}
	*t = created
	return nil
}

// IssueTokens creates and stores one email token for the account. The returned
// slice always holds exactly that token.
func IssueTokens(
	ctx context.Context,
	repo Repository,
	generator TokenGenerator,
	accountID account.ID,
	now func() time.Time,
) ([]RegisterToken, error) {
	t := New(accountID, MethodEmail)
	if err := Persist(ctx, repo, generator, &t, now); err != nil {
		return nil, err
	}
	return []RegisterToken{t}, nil
}
