// Package eventloop запускает асинхронные операции и выполняет их
// обработчики завершения в одной горутине, после синхронного кода.
//
// Операция стартует сразу в собственной горутине, но ее обработчики
// (Then/Catch) попадают в очередь цикла. Очередь разбирается только после
// возврата функции main, переданной в Run, поэтому весь синхронный код
// выполняется раньше любого обработчика независимо от задержек сети.
package eventloop

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// ErrStopped возвращается Run для цикла, остановленного завершением контекста.
var ErrStopped = errors.New("event loop stopped")

// Loop хранит очередь обработчиков и счетчик незавершенных операций.
type Loop struct {
	logger *zap.Logger

	pending *atomic.Int64
	wakeup  chan struct{}

	mu      sync.Mutex
	ctx     context.Context
	queue   []func()
	stopped bool
}

// New создает новый цикл событий.
func New(logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		logger:  logger,
		pending: atomic.NewInt64(0),
		wakeup:  make(chan struct{}, 1),
		ctx:     context.Background(),
	}
}

// Pending возвращает число операций, которые еще не завершились.
func (l *Loop) Pending() int64 {
	return l.pending.Load()
}

// Run выполняет main синхронно, затем разбирает очередь обработчиков,
// пока есть незавершенные операции или необработанные элементы очереди.
// Если ctx завершается раньше, возвращает ctx.Err(): очередь очищается,
// обработчики операций, завершившихся позже, отбрасываются, а повторный
// Run возвращает ErrStopped.
func (l *Loop) Run(ctx context.Context, main func()) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrStopped
	}
	l.ctx = ctx
	l.mu.Unlock()

	main()

	for {
		// pending проверяется до очереди: операция ставит обработчик
		// в очередь раньше, чем уменьшает счетчик.
		idle := l.pending.Load() == 0

		if job, ok := l.dequeue(); ok {
			job()
			continue
		}
		if idle {
			return nil
		}

		select {
		case <-l.wakeup:
		case <-ctx.Done():
			l.logger.Debug("event loop stopped with pending operations",
				zap.Int64("pending", l.pending.Load()),
				zap.Error(ctx.Err()))
			l.stop()
			return ctx.Err()
		}
	}
}

func (l *Loop) context() context.Context {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctx
}

func (l *Loop) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopped = true
	clear(l.queue)
	l.queue = nil
}

func (l *Loop) enqueue(job func()) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, job)
	l.mu.Unlock()
	l.notify()
}

func (l *Loop) dequeue() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil, false
	}
	job := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return job, true
}

func (l *Loop) notify() {
	select {
	case l.wakeup <- struct{}{}:
	default:
	}
}

func (l *Loop) begin() {
	l.pending.Inc()
}

func (l *Loop) done() {
	l.pending.Dec()
	l.notify()
}
