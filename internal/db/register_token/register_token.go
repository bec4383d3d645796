package registertoken

import (
	"context"
	"errors"

	"selector/internal/core/domain/account"
	"selector/internal/core/domain/registration"
	"selector/internal/db/sqlcgen"

	"github.com/jackc/pgx/v4"
)

type PgxRegisterTokenRepository struct {
	queries *sqlcgen.Queries
}

func NewPgxRepository(db sqlcgen.DBTX) *PgxRegisterTokenRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxRegisterTokenRepository{queries: sqlcgen.New(db)}
}

func (r *PgxRegisterTokenRepository) Create(
	ctx context.Context,
	input registration.CreateInput,
) (t registration.RegisterToken, err error) {
	if input.Token == "" {
		return t, registration.ErrEmptyToken
	}
	dbtoken, err := r.queries.CreateRegisterToken(ctx, sqlcgen.CreateRegisterTokenParams{
		AccountID: int64(input.AccountID),
		Token:     string(input.Token),
		Method:    string(input.Method),
		IssuedAt:  input.IssuedAt,
		Sent:      input.Sent,
	})
	if err != nil {
		return t, err
	}
	return decodeAndCheck(dbtoken)
}

func (r *PgxRegisterTokenRepository) MarkSent(
	ctx context.Context,
	id registration.ID,
) (t registration.RegisterToken, err error) {
	dbtoken, err := r.queries.MarkRegisterTokenSent(ctx, int64(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return t, registration.ErrTokenDoesNotExist
	}
	if err != nil {
		return t, err
	}
	return decodeAndCheck(dbtoken)
}

func (r *PgxRegisterTokenRepository) ListUnsent(
	ctx context.Context,
	accountID account.ID,
) ([]registration.RegisterToken, error) {
	dbtokens, err := r.queries.ListUnsentRegisterTokens(ctx, int64(accountID))
	if err != nil {
		return nil, err
	}
	return decodeTokens(dbtokens)
}

func decodeTokens(dbtokens []sqlcgen.RegisterToken) ([]registration.RegisterToken, error) {
	tokens := make([]registration.RegisterToken, 0, len(dbtokens))
	for _, dbtoken := range dbtokens {
		t, err := decodeAndCheck(dbtoken)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func decodeAndCheck(dbtoken sqlcgen.RegisterToken) (registration.RegisterToken, error) {
	t := registration.RegisterToken{
		ID:        registration.ID(dbtoken.ID),
		AccountID: account.ID(dbtoken.AccountID),
		Token:     registration.Token(dbtoken.Token),
		Method:    registration.Method(dbtoken.Method),
		IssuedAt:  dbtoken.IssuedAt.UTC(),
		Sent:      dbtoken.Sent,
	}
	if err := t.CheckState(); err != nil {
		return t, err
	}
	return t, nil
}
