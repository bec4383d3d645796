package consumers

import (
	"context"

	"selector/internal/app/deps"
	"selector/internal/app/services"
	dl "selector/internal/core/domain/logging"
	registertokensdispatch "selector/internal/rabbitmq/consumers/register_tokens_dispatch"
)

func initRegisterTokensDispatchConsumer(deps *deps.Deps, services *services.Services) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqRegisterDispatchQueue
	if err = rabbitmqChannel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	consumer := registertokensdispatch.New(deps.Logger, rabbitmqChannel, queue, services.SendRegisterTokens)
	if err = consumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() {
		rabbitmqChannel.Close()
		<-consumer.Done()
		deps.Logger.Info(context.Background(), "Consumer has stopped.", dl.Entry("queue", queue))
	}
}

func InitConsumers(deps *deps.Deps, services *services.Services) func() {
	shutdownRegisterTokensDispatchConsumer := initRegisterTokensDispatchConsumer(deps, services)

	return func() {
		shutdownRegisterTokensDispatchConsumer()
	}
}
