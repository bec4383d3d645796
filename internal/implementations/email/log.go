package email

import (
	"context"

	"selector/internal/core/domain/account"
	c "selector/internal/core/domain/common"
	"selector/internal/core/domain/logging"
)

// LogMailer writes mails to the log instead of sending them.
type LogMailer struct {
	log         logging.Logger
	defaultFrom c.Email
}

func NewLogMailer(log logging.Logger, defaultFrom c.Email) *LogMailer {
	return &LogMailer{log: log, defaultFrom: defaultFrom}
}

func (m *LogMailer) SendMail(ctx context.Context, mail account.Mail) error {
	from, to, err := envelope(mail, m.defaultFrom)
	if err != nil {
		return err
	}
	if len(to) == 0 {
		m.log.Info(ctx, "Mail has no recipients, skipped.", logging.Entry("subject", mail.Subject))
		return nil
	}
	m.log.Info(
		ctx,
		"Mail has been written to the log.",
		logging.Entry("from", from),
		logging.Entry("to", to),
		logging.Entry("subject", mail.Subject),
		logging.Entry("body", mail.Body),
	)
	return nil
}
