// Package handler содержит HTTP обработчики тестового сервера.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/middleware"
	"github.com/InQaaaaGit/todo_fetch.git/internal/models"
	"github.com/InQaaaaGit/todo_fetch.git/internal/service"
	"github.com/InQaaaaGit/todo_fetch.git/internal/storage"
)

const (
	contentTypeHTML = "text/html"
	contentTypeJSON = "application/json"

	// GreetingPage содержит страницу, которую сервер отдает на GET /
	GreetingPage = "<html><body><h1>Hello! You've reached the server.</h1></body></html>"

	todoNotFoundMessage = "todo not found"
	invalidIDMessage    = "invalid todo id"
)

type Handler struct {
	service service.TodoService
	logger  *zap.Logger
}

func NewHandler(service service.TodoService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleRoot отдает приветственную страницу. Методы, кроме GET и HEAD,
// не поддерживаются.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.logger.Warn("Unsupported method",
			zap.String("method", r.Method),
			zap.String("remote_addr", r.RemoteAddr))
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.logger.Info("Handling GET request", zap.String("path", r.URL.Path))

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(GreetingPage)); err != nil {
		h.logger.Error("Error writing response", zap.Error(err))
	}
}

// HandleListTodos отдает все todo
func (h *Handler) HandleListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.ListTodos(r.Context())
	if err != nil {
		h.logger.Error("Error listing todos", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, r, http.StatusOK, todos)
}

// HandleGetTodo отдает один todo по идентификатору из пути
func (h *Handler) HandleGetTodo(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")

	todo, err := h.service.GetTodo(r.Context(), rawID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			http.Error(w, invalidIDMessage, http.StatusBadRequest)
		case errors.Is(err, storage.ErrTodoNotFound):
			http.Error(w, todoNotFoundMessage, http.StatusNotFound)
		default:
			h.logger.Error("Error getting todo", zap.String("id", rawID), zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, todo)
}

// HandleCreateTodo сохраняет todo из JSON тела запроса
func (h *Handler) HandleCreateTodo(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), contentTypeJSON) {
		http.Error(w, "Invalid Content-Type", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			h.logger.Error("Error closing request body", zap.Error(err))
		}
	}()

	var todo models.Todo
	if err := json.NewDecoder(r.Body).Decode(&todo); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SaveTodo(r.Context(), todo); err != nil {
		if errors.Is(err, storage.ErrInvalidTodo) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("Error saving todo", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, todo)
}

// HandlePing проверяет доступность хранилища
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CheckConnection(r.Context()); err != nil {
		h.logger.Error("Ошибка подключения к хранилищу", zap.Error(err))
		http.Error(w, "Storage connection error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Error writing JSON response",
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Error(err))
	}
}
