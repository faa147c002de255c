// Package models описывает данные, которыми обмениваются сервер и клиент.
package models

// Todo представляет задачу в формате jsonplaceholder
type Todo struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// DefaultTodos возвращает набор задач, совпадающий с первыми записями
// https://jsonplaceholder.typicode.com/todos
func DefaultTodos() []Todo {
	return []Todo{
		{UserID: 1, ID: 1, Title: "delectus aut autem", Completed: false},
		{UserID: 1, ID: 2, Title: "quis ut nam facilis et officia qui", Completed: false},
		{UserID: 1, ID: 3, Title: "fugiat veniam minus", Completed: false},
		{UserID: 1, ID: 4, Title: "et porro tempora", Completed: true},
		{UserID: 1, ID: 5, Title: "laboriosam mollitia et enim quasi adipisci quia provident illum", Completed: false},
	}
}
