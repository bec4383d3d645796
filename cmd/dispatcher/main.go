package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"selector/internal/app/consumers"
	"selector/internal/app/deps"
	"selector/internal/app/services"
	"selector/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	services := services.InitServices(deps)
	shutdownConsumers := consumers.InitConsumers(deps, services)

	stopCh, closeCh := createChannel()
	defer closeCh()

	deps.Logger.Info(
		context.Background(),
		"Register token dispatcher has started.",
		logging.Entry("queue", deps.Config.RabbitmqRegisterDispatchQueue),
		logging.Entry("mailBackend", deps.Config.MailBackend),
	)
	<-stopCh

	deps.Logger.Info(context.Background(), "Stopping register token dispatcher.")
	shutdownConsumers()
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
