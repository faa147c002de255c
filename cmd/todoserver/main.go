// Command todoserver запускает локальный сервер, отвечающий приветственной
// страницей на GET / и отдающий todo в формате jsonplaceholder.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/app"
	"github.com/InQaaaaGit/todo_fetch.git/internal/buildinfo"
	"github.com/InQaaaaGit/todo_fetch.git/internal/config"
	"github.com/InQaaaaGit/todo_fetch.git/internal/server"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if cfg.ShowVersion {
		if err := buildinfo.Current().Fprint(os.Stdout); err != nil {
			log.Printf("Error printing build info: %v", err)
		}
		return
	}

	logger, cleanup, err := server.InitLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}

// run создает приложение и обслуживает запросы до завершения ctx
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Starting todo server", zap.Stringer("build", buildinfo.Current()))

	application, err := app.NewApp(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("Error closing storage", zap.Error(err))
		}
	}()

	return application.Run(ctx)
}
