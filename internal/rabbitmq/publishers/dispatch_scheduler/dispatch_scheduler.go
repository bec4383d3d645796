package dispatchscheduler

import (
	"context"

	"selector/internal/core/domain/account"
	e "selector/internal/core/domain/errors"
	"selector/internal/core/domain/logging"
	"selector/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange string,
		key string,
		mandatory bool,
		immediate bool,
		msg amqp091.Publishing,
	) error
}

// RabbitMQ publishes dispatch requests to a queue through the default exchange.
type RabbitMQ struct {
	log     logging.Logger
	channel publisher
	queue   string
}

func NewRabbitMQ(log logging.Logger, channel publisher, queue string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	return &RabbitMQ{log: log, channel: channel, queue: queue}
}

func (s *RabbitMQ) ScheduleDispatch(ctx context.Context, accountID account.ID) error {
	msg := &schema.RegisterTokensDispatch{AccountID: int64(accountID)}
	body, err := msg.Marshal()
	if err != nil {
		return err
	}

	err = s.channel.PublishWithContext(ctx, "", s.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountId", accountID))
		return err
	}
	s.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("queue", s.queue),
		logging.Entry("accountId", accountID),
	)
	return nil
}
