package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/handler"
	"github.com/InQaaaaGit/todo_fetch.git/internal/service"
	"github.com/InQaaaaGit/todo_fetch.git/internal/storage"
)

// ExampleHandler_HandleGetTodo демонстрирует получение todo в формате jsonplaceholder.
func ExampleHandler_HandleGetTodo() {
	logger := zap.NewNop()
	svc := service.NewTodoService(storage.NewMemoryStorage(logger), logger)
	h := handler.NewHandler(svc, logger)

	r := chi.NewRouter()
	r.Get("/todos/{id}", h.HandleGetTodo)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/todos/1", nil))

	fmt.Printf("Status: %d\n", rr.Code)
	fmt.Print(rr.Body.String())

	// Output:
	// Status: 200
	// {"userId":1,"id":1,"title":"delectus aut autem","completed":false}
}
