package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/models"
)

// FileStorage implements TodoStorage on top of a JSON-lines file.
// Later records for the same id replace earlier ones.
type FileStorage struct {
	filePath string
	todos    map[int]models.Todo
	mutex    sync.RWMutex
	file     *os.File
	logger   *zap.Logger
}

// NewFileStorage opens (or creates) the file and loads its records.
// An empty file is seeded with models.DefaultTodos.
func NewFileStorage(filePath string, logger *zap.Logger) (*FileStorage, error) {
	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	fs := &FileStorage{
		filePath: filePath,
		file:     file,
		todos:    make(map[int]models.Todo),
		logger:   logger,
	}

	if err := fs.loadFromFile(); err != nil {
		_ = file.Close()
		return nil, err
	}

	if len(fs.todos) == 0 {
		logger.Info("Seeding file storage with default todos", zap.String("path", filePath))
		for _, todo := range models.DefaultTodos() {
			if err := fs.append(todo); err != nil {
				_ = file.Close()
				return nil, err
			}
		}
	}

	return fs, nil
}

// loadFromFile loads data from the file
func (fs *FileStorage) loadFromFile() error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if _, err := fs.file.Seek(0, 0); err != nil {
		return fmt.Errorf("error seeking to file start: %w", err)
	}

	decoder := json.NewDecoder(fs.file)
	for decoder.More() {
		var todo models.Todo
		if err := decoder.Decode(&todo); err != nil {
			return fmt.Errorf("error decoding record: %w", err)
		}
		if err := validate(todo); err != nil {
			fs.logger.Warn("Skipping invalid record", zap.Int("id", todo.ID), zap.Error(err))
			continue
		}
		fs.todos[todo.ID] = todo
	}

	return nil
}

// append writes one record; the caller must hold the mutex or own fs exclusively.
func (fs *FileStorage) append(todo models.Todo) error {
	data, err := json.Marshal(todo)
	if err != nil {
		return fmt.Errorf("error marshaling todo: %w", err)
	}
	if _, err := fs.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}
	fs.todos[todo.ID] = todo
	return nil
}

// Get получает todo по идентификатору
func (fs *FileStorage) Get(ctx context.Context, id int) (models.Todo, error) {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	todo, exists := fs.todos[id]
	if !exists {
		return models.Todo{}, ErrTodoNotFound
	}
	return todo, nil
}

// List возвращает все todo
func (fs *FileStorage) List(ctx context.Context) ([]models.Todo, error) {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	return sortedTodos(fs.todos), nil
}

// Save дописывает todo в файл
func (fs *FileStorage) Save(ctx context.Context, todo models.Todo) error {
	if err := validate(todo); err != nil {
		return err
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if fs.file == nil {
		return fmt.Errorf("file is not open")
	}
	return fs.append(todo)
}

// CheckConnection проверяет доступность файла
func (fs *FileStorage) CheckConnection(ctx context.Context) error {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	if fs.file == nil {
		return fmt.Errorf("file is not open")
	}
	return nil
}

// Close закрывает файл
func (fs *FileStorage) Close() error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if fs.file != nil {
		if err := fs.file.Sync(); err != nil {
			fs.logger.Error("Error syncing file before close", zap.Error(err))
		}

		if err := fs.file.Close(); err != nil {
			return fmt.Errorf("error closing file: %w", err)
		}
		fs.file = nil
	}

	return nil
}
