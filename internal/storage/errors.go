package storage

import "errors"

// ErrTodoNotFound возвращается, когда todo не найден в хранилище
var ErrTodoNotFound = errors.New("todo not found")

// ErrInvalidTodo возвращается при попытке сохранить некорректный todo
var ErrInvalidTodo = errors.New("invalid todo")
