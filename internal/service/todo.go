// Package service содержит бизнес-логику тестового сервера todo.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/models"
	"github.com/InQaaaaGit/todo_fetch.git/internal/storage"
)

// ErrInvalidID возвращается, когда идентификатор не является положительным числом
var ErrInvalidID = errors.New("invalid todo id")

// TodoService определяет интерфейс сервиса для работы с todo
type TodoService interface {
	GetTodo(ctx context.Context, rawID string) (models.Todo, error)
	ListTodos(ctx context.Context) ([]models.Todo, error)
	SaveTodo(ctx context.Context, todo models.Todo) error
	CheckConnection(ctx context.Context) error
}

// TodoServiceImpl реализует TodoService поверх storage.TodoStorage
type TodoServiceImpl struct {
	storage storage.TodoStorage
	logger  *zap.Logger
}

// NewTodoService создает сервис
func NewTodoService(s storage.TodoStorage, logger *zap.Logger) *TodoServiceImpl {
	return &TodoServiceImpl{
		storage: s,
		logger:  logger,
	}
}

// ParseID разбирает идентификатор из сегмента пути
func ParseID(rawID string) (int, error) {
	if rawID == "" || rawID[0] < '0' || rawID[0] > '9' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, rawID)
	}
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, rawID)
	}
	return id, nil
}

// GetTodo получает todo по идентификатору из пути запроса
func (s *TodoServiceImpl) GetTodo(ctx context.Context, rawID string) (models.Todo, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return models.Todo{}, err
	}
	return s.storage.Get(ctx, id)
}

// ListTodos возвращает все todo
func (s *TodoServiceImpl) ListTodos(ctx context.Context) ([]models.Todo, error) {
	return s.storage.List(ctx)
}

// SaveTodo сохраняет todo
func (s *TodoServiceImpl) SaveTodo(ctx context.Context, todo models.Todo) error {
	return s.storage.Save(ctx, todo)
}

// CheckConnection проверяет доступность хранилища. Хранилище без проверки
// соединения считается доступным.
func (s *TodoServiceImpl) CheckConnection(ctx context.Context) error {
	checker, ok := s.storage.(storage.DatabaseChecker)
	if !ok {
		return nil
	}
	return checker.CheckConnection(ctx)
}
