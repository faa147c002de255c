// Package app собирает тестовый сервер todo: хранилище, сервис,
// обработчики, маршруты и middleware.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/config"
	"github.com/InQaaaaGit/todo_fetch.git/internal/handler"
	"github.com/InQaaaaGit/todo_fetch.git/internal/middleware"
	"github.com/InQaaaaGit/todo_fetch.git/internal/server"
	"github.com/InQaaaaGit/todo_fetch.git/internal/service"
	"github.com/InQaaaaGit/todo_fetch.git/internal/storage"
)

// App представляет тестовый сервер.
// Инкапсулирует конфигурацию, HTTP роутер, логгер, хранилище и обработчики запросов.
type App struct {
	config  *config.Config      // Конфигурация приложения
	router  *chi.Mux            // HTTP роутер для обработки запросов
	logger  *zap.Logger         // Логгер для записи событий приложения
	storage storage.TodoStorage // Хранилище todo
	handler *handler.Handler    // Обработчики HTTP запросов
}

// NewApp создает приложение и регистрирует маршруты.
//
// Возвращает ошибку, если не удалось создать хранилище.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	todoStorage, err := storage.NewStorage(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating storage: %w", err)
	}

	svc := service.NewTodoService(todoStorage, logger)

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		storage: todoStorage,
		handler: handler.NewHandler(svc, logger),
	}
	a.setupRoutes()

	return a, nil
}

// setupRoutes настраивает HTTP маршруты и middleware для приложения.
func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestIDMiddleware)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(middleware.GzipMiddleware)

	a.router.HandleFunc("/", a.handler.HandleRoot)
	a.router.Get("/todos", a.handler.HandleListTodos)
	a.router.Post("/todos", a.handler.HandleCreateTodo)
	a.router.Get("/todos/{id}", a.handler.HandleGetTodo)
	a.router.Get("/ping", a.handler.HandlePing)
}

// Router возвращает роутер приложения
func (a *App) Router() http.Handler {
	return a.router
}

// GetServer создает и возвращает настроенный HTTP сервер.
func (a *App) GetServer() *http.Server {
	return &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// Run запускает HTTP или HTTPS сервер и блокируется до завершения ctx.
func (a *App) Run(ctx context.Context) error {
	return server.NewHTTPServer(a.GetServer(), a.config, a.logger).Run(ctx)
}

// Close освобождает ресурсы хранилища
func (a *App) Close() error {
	if closer, ok := a.storage.(storage.Closer); ok {
		return closer.Close()
	}
	return nil
}
