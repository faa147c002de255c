package eventloop

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Task описывает одну асинхронную операцию. Завершается ровно один раз:
// значением или ошибкой.
type Task[T any] struct {
	loop *Loop

	mu       sync.Mutex
	settled  bool
	flushed  bool
	caught   bool
	value    T
	err      error
	onValue  []func(T)
	onReject []func(error)
}

// Async запускает fn в отдельной горутине и сразу возвращает Task.
// fn получает контекст, переданный в Run.
func Async[T any](l *Loop, fn func(ctx context.Context) (T, error)) *Task[T] {
	t := &Task[T]{loop: l}
	ctx := l.context()

	l.begin()
	go func() {
		defer l.done()
		value, err := fn(ctx)
		t.settle(value, err)
	}()

	return t
}

// Then регистрирует обработчик успешного завершения. Обработчик всегда
// выполняется циклом, даже если задача уже завершилась.
func (t *Task[T]) Then(cb func(T)) *Task[T] {
	t.mu.Lock()
	if !t.flushed {
		t.onValue = append(t.onValue, cb)
		t.mu.Unlock()
		return t
	}
	value, err := t.value, t.err
	t.mu.Unlock()

	if err == nil {
		t.loop.enqueue(func() { cb(value) })
	}
	return t
}

// Catch регистрирует обработчик ошибки.
func (t *Task[T]) Catch(cb func(error)) *Task[T] {
	t.mu.Lock()
	t.caught = true
	if !t.flushed {
		t.onReject = append(t.onReject, cb)
		t.mu.Unlock()
		return t
	}
	err := t.err
	t.mu.Unlock()

	if err != nil {
		t.loop.enqueue(func() { cb(err) })
	}
	return t
}

// Settled сообщает, завершилась ли операция.
func (t *Task[T]) Settled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.settled
}

func (t *Task[T]) settle(value T, err error) {
	t.mu.Lock()
	t.settled = true
	t.value = value
	t.err = err
	t.mu.Unlock()

	t.loop.enqueue(t.flush)
}

// flush выполняется в горутине цикла.
func (t *Task[T]) flush() {
	t.mu.Lock()
	t.flushed = true
	onValue, onReject := t.onValue, t.onReject
	t.onValue, t.onReject = nil, nil
	value, err, caught := t.value, t.err, t.caught
	t.mu.Unlock()

	if err != nil {
		if !caught {
			t.loop.logger.Debug("unhandled task rejection", zap.Error(err))
		}
		for _, cb := range onReject {
			cb(err)
		}
		return
	}

	for _, cb := range onValue {
		cb(value)
	}
}
