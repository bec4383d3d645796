package account

import (
	"context"
	"database/sql"
	"errors"

	"selector/internal/core/domain/account"
	c "selector/internal/core/domain/common"
	"selector/internal/db/sqlcgen"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const USERNAME_CONSTRAINT_NAME = "account_username_idx"

type PgxAccountRepository struct {
	queries *sqlcgen.Queries
}

func NewPgxRepository(db sqlcgen.DBTX) *PgxAccountRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxAccountRepository{queries: sqlcgen.New(db)}
}

func (r *PgxAccountRepository) Create(ctx context.Context, input account.CreateInput) (a account.Account, err error) {
	dbaccount, err := r.queries.CreateAccount(ctx, sqlcgen.CreateAccountParams{
		Username:     string(input.Username),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        string(input.Email),
		PasswordHash: encodePasswordHash(input.PasswordHash),
		IsActive:     input.IsActive,
		IsStaff:      input.IsStaff,
		IsSuperuser:  input.IsSuperuser,
		DateJoined:   input.DateJoined,
	})

	var errUniqueConstraint *pgconn.PgError
	if errors.As(err, &errUniqueConstraint) {
		if errUniqueConstraint.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
			errUniqueConstraint.ConstraintName == USERNAME_CONSTRAINT_NAME {
			return a, account.ErrUsernameAlreadyExists
		}
	}
	if err != nil {
		return a, err
	}
	return decodeAndCheck(dbaccount)
}

func (r *PgxAccountRepository) GetByID(ctx context.Context, id account.ID) (a account.Account, err error) {
	dbaccount, err := r.queries.GetAccountByID(ctx, int64(id))
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}
	return decodeAndCheck(dbaccount)
}

func (r *PgxAccountRepository) GetByUsername(
	ctx context.Context,
	username account.Username,
) (a account.Account, err error) {
	dbaccount, err := r.queries.GetAccountByUsername(ctx, string(username))
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}
	return decodeAndCheck(dbaccount)
}

func (r *PgxAccountRepository) Update(ctx context.Context, input account.UpdateInput) (a account.Account, err error) {
	dbaccount, err := r.queries.UpdateAccount(ctx, sqlcgen.UpdateAccountParams{
		ID:               int64(input.ID),
		DoIsActiveUpdate: input.DoIsActiveUpdate,
		IsActive:         input.IsActive,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}
	return decodeAndCheck(dbaccount)
}

func encodePasswordHash(ph c.Optional[account.PasswordHash]) sql.NullString {
	return sql.NullString{String: string(ph.Value), Valid: ph.IsPresent}
}

func decodeAndCheck(dbaccount sqlcgen.Account) (account.Account, error) {
	a := decodeAccount(dbaccount)
	if err := a.CheckState(); err != nil {
		return a, err
	}
	return a, nil
}

func decodeAccount(a sqlcgen.Account) account.Account {
	return account.Account{
		ID:           account.ID(a.ID),
		Username:     account.Username(a.Username),
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        c.Email(a.Email),
		PasswordHash: c.NewOptional(account.PasswordHash(a.PasswordHash.String), a.PasswordHash.Valid),
		IsActive:     a.IsActive,
		IsStaff:      a.IsStaff,
		IsSuperuser:  a.IsSuperuser,
		DateJoined:   a.DateJoined.UTC(),
		LastLoginAt:  c.NewOptional(a.LastLoginAt.Time.UTC(), a.LastLoginAt.Status == pgtype.Present),
	}
}
