// Package demo содержит сценарий демонстрации: синхронный код выполняется
// раньше обработчиков завершения запросов, запущенных из этого кода.
package demo

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/console"
	"github.com/InQaaaaGit/todo_fetch.git/internal/eventloop"
	"github.com/InQaaaaGit/todo_fetch.git/internal/fetcher"
)

// Строки сценария
const (
	MsgStart    = "fetching data..."
	MsgMainDone = "main thread done"
)

// DoneMessage возвращает строку, которую выводит обработчик завершения
// запроса todo с указанным id.
func DoneMessage(id int) string {
	return fmt.Sprintf("fetching todo%d done!", id)
}

// TodoURL собирает адрес todo по базовому адресу сервиса.
func TodoURL(baseURL string, id int) string {
	return fmt.Sprintf("%s/todos/%d", strings.TrimRight(baseURL, "/"), id)
}

// Script описывает один запуск демонстрации.
type Script struct {
	Console *console.Console
	Client  *fetcher.Client
	Logger  *zap.Logger
	BaseURL string
	TodoIDs []int
}

// Run выполняет сценарий в цикле loop и ждет завершения всех запросов.
// Ошибки запросов не выводятся и не возвращаются: для неудачного запроса
// просто нет строки о завершении.
func (s *Script) Run(ctx context.Context, loop *eventloop.Loop) error {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return loop.Run(ctx, func() {
		s.Console.Log(MsgStart)

		for _, id := range s.TodoIDs {
			url := TodoURL(s.BaseURL, id)
			msg := DoneMessage(id)
			logger.Debug("Starting fetch", zap.String("url", url))

			s.Client.Fetch(loop, url).Then(func(*fetcher.Response) {
				s.Console.Log(msg)
			})
		}

		s.Console.Log(MsgMainDone)
	})
}
