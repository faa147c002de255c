package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/models"
)

// MemoryStorage реализует TodoStorage с использованием памяти
type MemoryStorage struct {
	mu     sync.RWMutex
	todos  map[int]models.Todo
	logger *zap.Logger
}

// NewMemoryStorage создает хранилище, заполненное models.DefaultTodos
func NewMemoryStorage(logger *zap.Logger) *MemoryStorage {
	ms := &MemoryStorage{
		todos:  make(map[int]models.Todo),
		logger: logger,
	}
	for _, todo := range models.DefaultTodos() {
		ms.todos[todo.ID] = todo
	}
	return ms
}

// Get получает todo по идентификатору
func (ms *MemoryStorage) Get(ctx context.Context, id int) (models.Todo, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	todo, exists := ms.todos[id]
	if !exists {
		return models.Todo{}, ErrTodoNotFound
	}
	return todo, nil
}

// List возвращает все todo
func (ms *MemoryStorage) List(ctx context.Context) ([]models.Todo, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return sortedTodos(ms.todos), nil
}

// Save создает или заменяет todo
func (ms *MemoryStorage) Save(ctx context.Context, todo models.Todo) error {
	if err := validate(todo); err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.todos[todo.ID] = todo
	ms.logger.Debug("Todo saved", zap.Int("id", todo.ID))
	return nil
}

// CheckConnection проверяет доступность хранилища
func (ms *MemoryStorage) CheckConnection(ctx context.Context) error {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if ms.todos == nil {
		return fmt.Errorf("storage is not initialized")
	}
	return nil
}

func sortedTodos(todos map[int]models.Todo) []models.Todo {
	result := make([]models.Todo, 0, len(todos))
	for _, todo := range todos {
		result = append(result, todo)
	}
	slices.SortFunc(result, func(a, b models.Todo) int {
		return a.ID - b.ID
	})
	return result
}
