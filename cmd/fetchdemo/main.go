// Command fetchdemo показывает порядок выполнения: сообщение о старте,
// два независимых запроса todo, сообщение о завершении основного кода и
// только затем сообщения о завершении запросов.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/buildinfo"
	"github.com/InQaaaaGit/todo_fetch.git/internal/config"
	"github.com/InQaaaaGit/todo_fetch.git/internal/console"
	"github.com/InQaaaaGit/todo_fetch.git/internal/demo"
	"github.com/InQaaaaGit/todo_fetch.git/internal/eventloop"
	"github.com/InQaaaaGit/todo_fetch.git/internal/fetcher"
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

	// Диагностический лог пишется в stderr, вывод сценария пишется в stdout
	logger, cleanup, err := server.InitLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("Fetch demo interrupted", zap.Error(err))
	}
}

// run выполняет сценарий и выводит его строки в out
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	c := console.New(out)
	defer func() {
		_ = c.Sync()
	}()

	client := fetcher.NewClient(
		fetcher.WithLogger(logger),
		fetcher.WithUserAgent(fetcher.DefaultUserAgent+"/"+buildinfo.Current().Version),
	)

	logger.Debug("Starting fetch demo",
		zap.String("target", cfg.TargetBaseURL),
		zap.Ints("todo_ids", cfg.TodoIDs),
		zap.Stringer("build", buildinfo.Current()))

	script := &demo.Script{
		Console: c,
		Client:  client,
		Logger:  logger,
		BaseURL: cfg.TargetBaseURL,
		TodoIDs: cfg.TodoIDs,
	}
	return script.Run(ctx, eventloop.New(logger))
}
