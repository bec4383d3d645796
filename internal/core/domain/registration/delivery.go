package registration

import (
	"context"

	"selector/internal/core/domain/account"
)

const EmailTemplate = "registration_email.txt"

// Template context keys for EmailTemplate.
const (
	ContextUser          = "user"
	ContextRegisterToken = "register_token"
	ContextIssuedAt      = "issued_at"
)

type Renderer interface {
	Render(name string, data map[string]interface{}) (string, error)
}

// EmailSettings hold the externally configured parts of a registration email.
type EmailSettings struct {
	Subject string
	From    string
}

// DispatchScheduler asks for the unsent tokens of an account to be delivered later.
type DispatchScheduler interface {
	ScheduleDispatch(ctx context.Context, accountID account.ID) error
}

func EmailContext(a account.Account, t RegisterToken) map[string]interface{} {
	return map[string]interface{}{
		ContextUser:          &a,
		ContextRegisterToken: string(t.Token),
		ContextIssuedAt:      t.IssuedAt,
	}
}
