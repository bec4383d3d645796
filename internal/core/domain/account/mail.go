package account

import (
	"context"

	c "selector/internal/core/domain/common"
)

type Mail struct {
	Subject string
	Body    string
	From    c.Optional[c.Email]
	To      []c.Email
}

type Mailer interface {
	SendMail(ctx context.Context, mail Mail) error
}
