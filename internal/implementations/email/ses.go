package email

import (
	"context"

	"selector/internal/core/domain/account"
	c "selector/internal/core/domain/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

type sesClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESMailer struct {
	ses sesClient
	// This address must be verified with Amazon SES.
	defaultFrom c.Email
}

func NewSESMailer(awsConfig aws.Config, defaultFrom c.Email) *SESMailer {
	return &SESMailer{ses: ses.NewFromConfig(awsConfig), defaultFrom: defaultFrom}
}

func (m *SESMailer) SendMail(ctx context.Context, mail account.Mail) error {
	from, to, err := envelope(mail, m.defaultFrom)
	if err != nil || len(to) == 0 {
		return err
	}

	_, err = m.ses.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(from),
		Destination: &types.Destination{
			CcAddresses: []string{},
			ToAddresses: to,
		},
		Message: &types.Message{
			Subject: content(mail.Subject),
			Body:    &types.Body{Text: content(mail.Body)},
		},
	})
	return err
}

func content(data string) *types.Content {
	return &types.Content{Data: aws.String(data), Charset: aws.String(charset)}
}
