package registertokensdispatch

import (
	"context"

	"selector/internal/core/domain/account"
	e "selector/internal/core/domain/errors"
	"selector/internal/core/domain/logging"
	"selector/internal/core/services"
	sendregistertokens "selector/internal/core/services/send_register_tokens"
	"selector/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type deliverySource interface {
	Consume(
		queue, consumer string,
		autoAck, exclusive, noLocal, noWait bool,
		args amqp091.Table,
	) (<-chan amqp091.Delivery, error)
}

type Consumer struct {
	log     logging.Logger
	channel deliverySource
	queue   string
	service services.Service[sendregistertokens.Input, sendregistertokens.Result]
	done    chan struct{}
}

func New(
	log logging.Logger,
	channel deliverySource,
	queue string,
	service services.Service[sendregistertokens.Input, sendregistertokens.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, service: service, done: make(chan struct{})}
}

// Consume handles deliveries one at a time on its own goroutine until the
// delivery channel is closed.
func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		defer close(c.done)
		for delivery := range deliveries {
			c.handle(context.Background(), delivery)
		}
	}()
	return nil
}

// Done is closed once the consuming goroutine has exited.
func (c *Consumer) Done() <-chan struct{} {
	return c.done
}

func (c *Consumer) handle(ctx context.Context, delivery amqp091.Delivery) {
	msg := &schema.RegisterTokensDispatch{}
	if err := msg.Unmarshal(delivery.Body); err != nil {
		c.log.Error(
			ctx,
			"Could not unmarshal register tokens dispatch message.",
			logging.Entry("err", err),
			logging.Entry("body", string(delivery.Body)),
		)
		c.ack(ctx, delivery)
		return
	}

	c.log.Info(ctx, "Got register tokens dispatch message.", logging.Entry("accountId", msg.AccountID))
	result, err := c.service.Run(ctx, sendregistertokens.Input{AccountID: account.ID(msg.AccountID)})
	if err != nil {
		c.log.Error(
			ctx,
			"Could not dispatch register tokens, service returned an error.",
			logging.Entry("accountId", msg.AccountID),
			logging.Entry("err", err),
		)
	} else {
		c.log.Info(
			ctx,
			"Register tokens have been dispatched.",
			logging.Entry("accountId", msg.AccountID),
			logging.Entry("sent", len(result.Sent)),
		)
	}
	c.ack(ctx, delivery)
}

func (c *Consumer) ack(ctx context.Context, delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(ctx, "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
