package email

import (
	"context"
	"fmt"

	"selector/internal/core/domain/account"
	c "selector/internal/core/domain/common"

	"gopkg.in/gomail.v2"
)

type smtpDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	dialer      smtpDialer
	defaultFrom c.Email
}

func NewSMTPMailer(host string, port int, username string, password string, defaultFrom c.Email) *SMTPMailer {
	return &SMTPMailer{
		dialer:      gomail.NewDialer(host, port, username, password),
		defaultFrom: defaultFrom,
	}
}

func (m *SMTPMailer) SendMail(ctx context.Context, mail account.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := m.message(mail)
	if err != nil || msg == nil {
		return err
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) message(mail account.Mail) (*gomail.Message, error) {
	from, to, err := envelope(mail, m.defaultFrom)
	if err != nil || len(to) == 0 {
		return nil, err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)
	return msg, nil
}
