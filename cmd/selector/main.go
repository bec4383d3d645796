package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"selector/internal/app"
	"selector/internal/app/deps"
	"selector/internal/app/services"
	dl "selector/internal/core/domain/logging"
	"selector/internal/db"
)

func main() {
	applyMigrations := flag.Bool("migrate", false, "apply DB migrations before starting the HTTP server")
	flag.Parse()

	deps, shutdownDeps := deps.InitDeps()
	if *applyMigrations {
		migrate(deps)
	}
	services := services.InitServices(deps)

	httpServer := app.InitHttpServer(deps, services)
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), httpServer, deps, shutdownDeps)
}

func migrate(deps *deps.Deps) {
	ctx := context.Background()
	if err := db.Migrate(deps.Config.PostgresqlURL, deps.Config.MigrationsPath); err != nil {
		deps.Logger.Error(ctx, "Could not apply DB migrations.", dl.Entry("err", err))
		panic(err)
	}
	deps.Logger.Info(ctx, "DB migrations have been applied.", dl.Entry("path", deps.Config.MigrationsPath))
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("mailBackend", deps.Config.MailBackend),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
	deps.Logger.Info(context.Background(), "HTTP server is stopping gracefully.")
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutdownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}

	deps.Logger.Info(ctx, "HTTP server has shut down.")
	shutdownDeps()
}
