package rabbitmq

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"selector/internal/core/domain/logging"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reconnectDelay = 3 * time.Second

// Connection re-dials the broker whenever the underlying connection is lost.
type Connection struct {
	*amqp.Connection
	log logging.Logger
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	connection := &Connection{Connection: conn, log: log}
	go connection.watch(url)
	return connection, nil
}

func (c *Connection) watch(url string) {
	ctx := context.Background()
	for {
		reason, ok := <-c.Connection.NotifyClose(make(chan *amqp.Error))
		if !ok {
			c.log.Info(ctx, "RabbitMQ connection closed.")
			return
		}

		c.log.Warning(ctx, "RabbitMQ connection lost.", logging.Entry("reason", *reason))
		for {
			time.Sleep(reconnectDelay)

			conn, err := amqp.Dial(url)
			if err == nil {
				c.Connection = conn
				c.log.Info(ctx, "RabbitMQ reconnect success.")
				break
			}
			c.log.Error(ctx, "RabbitMQ reconnect failed.", logging.Entry("err", err))
		}
	}
}

// Channel opens a channel that is recreated after broker side closes.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	channel := &Channel{Channel: ch, log: c.log}
	go channel.watch(c)
	return channel, nil
}

type Channel struct {
	*amqp.Channel
	closed int32
	log    logging.Logger
}

func (ch *Channel) watch(c *Connection) {
	ctx := context.Background()
	for {
		reason, ok := <-ch.Channel.NotifyClose(make(chan *amqp.Error))
		if !ok || ch.IsClosed() {
			// sets the closed flag when the whole connection went away
			ch.Close()
			return
		}

		ch.log.Warning(ctx, "RabbitMQ channel closed.", logging.Entry("reason", *reason))
		for {
			time.Sleep(reconnectDelay)

			recreated, err := c.Connection.Channel()
			if err == nil {
				ch.log.Info(ctx, "RabbitMQ channel recreated.")
				ch.Channel = recreated
				break
			}
			ch.log.Error(ctx, "Could not recreate RabbitMQ channel.", logging.Entry("err", err))
		}
	}
}

// IsClosed reports whether Close has been called by the application.
func (ch *Channel) IsClosed() bool {
	return atomic.LoadInt32(&ch.closed) == 1
}

func (ch *Channel) Close() error {
	if !atomic.CompareAndSwapInt32(&ch.closed, 0, 1) {
		return amqp.ErrClosed
	}
	return ch.Channel.Close()
}

// DeclareQueue declares a durable queue. Messages are published to it through
// the default exchange using the queue name as routing key.
func (ch *Channel) DeclareQueue(name string) error {
	_, err := ch.QueueDeclare(name, true, false, false, false, nil)
	return err
}

// Consume survives channel recreation. The returned channel is closed only after
// the application closed the Channel.
func (ch *Channel) Consume(
	queue, consumer string,
	autoAck, exclusive, noLocal, noWait bool,
	args amqp.Table,
) (<-chan amqp.Delivery, error) {
	deliveries := make(chan amqp.Delivery)

	go func() {
		defer close(deliveries)
		ctx := context.Background()
		for {
			d, err := ch.Channel.Consume(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
			if err != nil {
				if ch.IsClosed() {
					return
				}
				ch.log.Error(ctx, "Consume failed.", logging.Entry("err", err), logging.Entry("queue", queue))
				time.Sleep(reconnectDelay)
				continue
			}

			for msg := range d {
				deliveries <- msg
			}

			// the closed flag may be set a bit after the delivery channel is drained
			time.Sleep(reconnectDelay)
			if ch.IsClosed() {
				ch.log.Info(ctx, "Channel is closed, stop consuming.", logging.Entry("queue", queue))
				return
			}
		}
	}()

	return deliveries, nil
}
