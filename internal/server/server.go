// Package server предоставляет общую функциональность для запуска HTTP и HTTPS серверов.
// Пакет инкапсулирует логику инициализации логгера и запуска/остановки серверов.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/config"
)

// ShutdownTimeout ограничивает время корректной остановки сервера
const ShutdownTimeout = 5 * time.Second

// HTTPServer представляет HTTP сервер с общей логикой запуска
type HTTPServer struct {
	server *http.Server
	config *config.Config
	logger *zap.Logger
}

// NewHTTPServer создает новый HTTP сервер
func NewHTTPServer(server *http.Server, cfg *config.Config, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: server,
		config: cfg,
		logger: logger,
	}
}

// Run слушает адрес из конфигурации и обслуживает запросы, пока не
// завершится ctx. После этого сервер останавливается корректно.
func (s *HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.ServerAddress)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.config.ServerAddress, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln, пока не завершится ctx.
func (s *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Server shutdown requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.logger.Info("Server closed")
	return nil
}

func (s *HTTPServer) serve(ln net.Listener) error {
	if s.config.IsHTTPSEnabled() {
		s.logger.Info("Starting HTTPS server",
			zap.String("address", ln.Addr().String()),
			zap.String("cert", s.config.TLSCertFile),
			zap.String("key", s.config.TLSKeyFile))
		return s.server.ServeTLS(ln, s.config.TLSCertFile, s.config.TLSKeyFile)
	}

	s.logger.Info("Starting HTTP server", zap.String("address", ln.Addr().String()))
	return s.server.Serve(ln)
}

// InitLogger создает production логгер с заданным уровнем и функцию для его синхронизации
func InitLogger(level string) (*zap.Logger, func(), error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing logger: %w", err)
	}

	cleanup := func() {
		// Sync для stderr на некоторых платформах возвращает EINVAL, это не ошибка
		_ = logger.Sync()
	}

	return logger, cleanup, nil
}
