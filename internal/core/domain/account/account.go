package account

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	c "selector/internal/core/domain/common"
	e "selector/internal/core/domain/errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	MaxUsernameLength = 2048
	MaxNameLength     = 2048
	MaxEmailLength    = 254
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type ID int64

type Username string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Account struct {
	ID           ID
	Username     Username
	FirstName    string
	LastName     string
	Email        c.Email
	PasswordHash c.Optional[PasswordHash]
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	DateJoined   time.Time
	LastLoginAt  c.Optional[time.Time]
}

// Validate checks the fields a caller is allowed to set. The returned error is a
// validation.Errors keyed by field name.
func (a Account) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(
			&a.Username,
			validation.Required,
			validation.Length(1, MaxUsernameLength),
			validation.Match(usernamePattern).Error("enter a valid username"),
		),
		validation.Field(&a.FirstName, validation.Length(0, MaxNameLength)),
		validation.Field(&a.LastName, validation.Length(0, MaxNameLength)),
		validation.Field(&a.Email, is.Email, validation.Length(0, MaxEmailLength)),
	)
}

// CheckState is applied to records decoded from storage.
func (a *Account) CheckState() error {
	if a.Username == "" {
		return e.NewInvalidStateError(fmt.Sprintf("username is empty for account %d", a.ID))
	}
	if !usernamePattern.MatchString(string(a.Username)) {
		return e.NewInvalidStateError(fmt.Sprintf("username of account %d has invalid characters", a.ID))
	}
	return nil
}

func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

func (a *Account) ShortName() string {
	return a.FirstName
}

func (a *Account) Deactivate() {
	a.IsActive = false
}

// Notify sends a message to the account's email address. An empty from lets the
// mailer use its default sender.
func (a *Account) Notify(
	ctx context.Context,
	mailer Mailer,
	subject string,
	body string,
	from c.Email,
) error {
	return mailer.SendMail(ctx, Mail{
		Subject: subject,
		Body:    body,
		From:    c.NewOptional(from, !from.IsEmpty()),
		To:      []c.Email{a.Email},
	})
}
