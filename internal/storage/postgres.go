package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/models"
)

const createTodosTableSQL = `CREATE TABLE IF NOT EXISTS todos (` +
	`id INTEGER PRIMARY KEY,` +
	`user_id INTEGER NOT NULL,` +
	`title TEXT NOT NULL,` +
	`completed BOOLEAN NOT NULL DEFAULT FALSE` +
	`)`

// PostgresStorage реализует TodoStorage с использованием PostgreSQL
type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresStorage подключается к базе, создает таблицу todos и заполняет
// ее задачами по умолчанию, если она пуста.
func NewPostgresStorage(dsn string, logger *zap.Logger) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	ps := &PostgresStorage{db: db, logger: logger}

	ctx := context.Background()
	if err := ps.init(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("Failed to close DB connection after init error", zap.Error(closeErr))
		}
		return nil, err
	}

	return ps, nil
}

func (ps *PostgresStorage) init(ctx context.Context) error {
	if err := ps.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection check error: %w", err)
	}

	if _, err := ps.db.ExecContext(ctx, createTodosTableSQL); err != nil {
		return fmt.Errorf("table creation error: %w", err)
	}

	var count int
	if err := ps.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM todos").Scan(&count); err != nil {
		return fmt.Errorf("count todos error: %w", err)
	}
	if count > 0 {
		return nil
	}

	return ps.saveAll(ctx, models.DefaultTodos())
}

// saveAll сохраняет todo одной транзакцией
func (ps *PostgresStorage) saveAll(ctx context.Context, todos []models.Todo) error {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("transaction start error: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback после Commit безопасен

	stmt, err := tx.PrepareContext(ctx, upsertTodoSQL)
	if err != nil {
		return fmt.Errorf("query preparation error: %w", err)
	}
	defer stmt.Close()

	for _, todo := range todos {
		if _, err := stmt.ExecContext(ctx, todo.ID, todo.UserID, todo.Title, todo.Completed); err != nil {
			return fmt.Errorf("insert todo %d error: %w", todo.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit error: %w", err)
	}
	return nil
}

const upsertTodoSQL = `INSERT INTO todos (id, user_id, title, completed) VALUES ($1, $2, $3, $4) ` +
	`ON CONFLICT (id) DO UPDATE SET user_id = EXCLUDED.user_id, title = EXCLUDED.title, completed = EXCLUDED.completed`

// Get получает todo по идентификатору
func (ps *PostgresStorage) Get(ctx context.Context, id int) (models.Todo, error) {
	var todo models.Todo
	err := ps.db.QueryRowContext(ctx,
		"SELECT id, user_id, title, completed FROM todos WHERE id = $1", id).
		Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}
		return models.Todo{}, fmt.Errorf("get todo error: %w", err)
	}
	return todo, nil
}

// List возвращает все todo
func (ps *PostgresStorage) List(ctx context.Context) ([]models.Todo, error) {
	rows, err := ps.db.QueryContext(ctx, "SELECT id, user_id, title, completed FROM todos ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list todos error: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Completed); err != nil {
			return nil, fmt.Errorf("scan todo error: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos error: %w", err)
	}
	return todos, nil
}

// Save создает или заменяет todo
func (ps *PostgresStorage) Save(ctx context.Context, todo models.Todo) error {
	if err := validate(todo); err != nil {
		return err
	}

	_, err := ps.db.ExecContext(ctx, upsertTodoSQL, todo.ID, todo.UserID, todo.Title, todo.Completed)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Class() == "22" { // 22 = data exception
			return fmt.Errorf("%w: %s", ErrInvalidTodo, pqErr.Message)
		}
		return fmt.Errorf("save todo error: %w", err)
	}
	return nil
}

// Close закрывает соединение с базой данных
func (ps *PostgresStorage) Close() error {
	return ps.db.Close()
}

// CheckConnection проверяет соединение с базой данных
func (ps *PostgresStorage) CheckConnection(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}
