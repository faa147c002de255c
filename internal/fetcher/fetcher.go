// Package fetcher выполняет исходящие GET-запросы синхронно или
// как асинхронные операции цикла событий.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/todo_fetch.git/internal/eventloop"
)

// DefaultUserAgent используется, если не задан другой.
const DefaultUserAgent = "todo_fetch"

// RequestIDHeader содержит идентификатор запроса.
const RequestIDHeader = "X-Request-ID"

// Response описывает полученный ответ. Тело читается, но не разбирается.
// Если чтение тела оборвалось, Body содержит прочитанную часть, а
// Incomplete равен true.
type Response struct {
	URL        string
	StatusCode int
	Duration   time.Duration
	RequestID  string
	Body       []byte
	Incomplete bool
}

// Client выполняет HTTP запросы.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *zap.Logger
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient задает используемый http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent задает заголовок User-Agent.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger задает логгер для диагностических сообщений.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient создает Client. Без опций используется http.DefaultClient
// и логгер-заглушка.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		userAgent:  DefaultUserAgent,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) newRequest(ctx context.Context, url, requestID string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

// Get выполняет GET запрос и ждет ответа. Любой HTTP ответ, включая
// неуспешные статусы и оборванное тело, считается завершением; ошибка
// возвращается только если ответ не получен.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	requestID := uuid.New().String()

	req, err := c.newRequest(ctx, url, requestID)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestsCounter.Add(ctx, 1, outcomeError)
		c.logger.Debug("Request failed",
			zap.String("url", url),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, &RequestError{URL: url, Cause: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("Error closing response body", zap.Error(err))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Debug("Error reading response body",
			zap.String("url", url),
			zap.String("request_id", requestID),
			zap.Int("read", len(body)),
			zap.Error(err))
	}

	result := &Response{
		URL:        url,
		StatusCode: resp.StatusCode,
		Duration:   time.Since(start),
		RequestID:  requestID,
		Body:       body,
		Incomplete: err != nil,
	}

	requestsCounter.Add(ctx, 1, outcomeResponse)
	c.logger.Debug("Request completed",
		zap.String("url", url),
		zap.String("request_id", requestID),
		zap.Int("status", result.StatusCode),
		zap.Duration("latency", result.Duration),
		zap.Int("size", len(body)))

	return result, nil
}

// Fetch запускает Get как операцию цикла и сразу возвращает управление.
func (c *Client) Fetch(loop *eventloop.Loop, url string) *eventloop.Task[*Response] {
	return eventloop.Async(loop, func(ctx context.Context) (*Response, error) {
		return c.Get(ctx, url)
	})
}
