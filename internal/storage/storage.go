// Package storage хранит todo, которые отдает тестовый сервер.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/config"
	"github.com/InQaaaaGit/todo_fetch.git/internal/models"
)

// TodoStorage определяет интерфейс хранилища todo
type TodoStorage interface {
	// Get получает todo по идентификатору
	Get(ctx context.Context, id int) (models.Todo, error)
	// List возвращает все todo, упорядоченные по идентификатору
	List(ctx context.Context) ([]models.Todo, error)
	// Save создает или заменяет todo
	Save(ctx context.Context, todo models.Todo) error
}

// DatabaseChecker определяет интерфейс для проверки доступности хранилища
type DatabaseChecker interface {
	// CheckConnection проверяет соединение с хранилищем
	CheckConnection(ctx context.Context) error
}

// Closer реализуют хранилища, которые держат открытые ресурсы
type Closer interface {
	Close() error
}

// NewStorage выбирает хранилище по конфигурации: PostgreSQL, если задан
// DATABASE_DSN, файл, если задан FILE_STORAGE_PATH, иначе память.
func NewStorage(cfg *config.Config, logger *zap.Logger) (TodoStorage, error) {
	switch {
	case cfg.DatabaseDSN != "":
		logger.Info("Using PostgreSQL storage")
		s, err := NewPostgresStorage(cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating postgres storage: %w", err)
		}
		return s, nil
	case cfg.FileStoragePath != "":
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		s, err := NewFileStorage(cfg.FileStoragePath, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating file storage: %w", err)
		}
		return s, nil
	default:
		logger.Info("Using memory storage")
		return NewMemoryStorage(logger), nil
	}
}

func validate(todo models.Todo) error {
	if todo.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidTodo)
	}
	if todo.Title == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidTodo)
	}
	return nil
}
