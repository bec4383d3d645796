package email

import (
	"errors"

	"selector/internal/core/domain/account"
	c "selector/internal/core/domain/common"
)

var ErrNoSender = errors.New("mail has no sender and no default sender is configured")

// envelope resolves the sender and recipient addresses of a mail. Empty
// addresses are dropped; a mail left without recipients yields an empty to and
// no error, and mailers treat it as sent.
func envelope(mail account.Mail, defaultFrom c.Email) (from string, to []string, err error) {
	to = make([]string, 0, len(mail.To))
	for _, address := range mail.To {
		if address.IsEmpty() {
			continue
		}
		to = append(to, string(address))
	}
	if len(to) == 0 {
		return "", nil, nil
	}
	from = string(mail.From.ValueOr(defaultFrom))
	if from == "" {
		return "", nil, ErrNoSender
	}
	return from, to, nil
}
