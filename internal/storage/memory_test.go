package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/models"
)

func TestMemoryStorage_Get(t *testing.T) {
	storage := NewMemoryStorage(zap.NewNop())
	ctx := context.Background()

	todo, err := storage.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Todo{UserID: 1, ID: 1, Title: "delectus aut autem"}, todo)

	_, err = storage.Get(ctx, 404)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestMemoryStorage_List(t *testing.T) {
	storage := NewMemoryStorage(zap.NewNop())

	todos, err := storage.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTodos(), todos)
}

func TestMemoryStorage_Save(t *testing.T) {
	storage := NewMemoryStorage(zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name    string
		todo    models.Todo
		wantErr error
	}{
		{name: "new todo", todo: models.Todo{UserID: 2, ID: 10, Title: "new"}},
		{name: "replace existing", todo: models.Todo{UserID: 1, ID: 1, Title: "changed", Completed: true}},
		{name: "zero id", todo: models.Todo{Title: "no id"}, wantErr: ErrInvalidTodo},
		{name: "empty title", todo: models.Todo{ID: 11}, wantErr: ErrInvalidTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storage.Save(ctx, tt.todo)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got, err := storage.Get(ctx, tt.todo.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.todo, got)
		})
	}
}

func TestMemoryStorage_CheckConnection(t *testing.T) {
	storage := NewMemoryStorage(zap.NewNop())
	assert.NoError(t, storage.CheckConnection(context.Background()))

	broken := &MemoryStorage{logger: zap.NewNop()}
	assert.Error(t, broken.CheckConnection(context.Background()))
}
