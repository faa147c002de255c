// Package console предоставляет текстовый вывод демо-программы.
// Каждая запись выводится как есть, без времени, уровня и полей,
// чтобы вывод совпадал со строками сценария.
package console

import (
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Console печатает строки сообщений в заданный writer.
type Console struct {
	logger *zap.Logger
}

// New создает Console поверх w. Запись в w сериализуется.
func New(w io.Writer) *Console {
	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.DebugLevel,
	)
	return &Console{logger: zap.New(core)}
}

// Log выводит одну строку.
func (c *Console) Log(msg string) {
	c.logger.Info(msg)
}

// Sync сбрасывает буферы writer'а.
func (c *Console) Sync() error {
	return c.logger.Sync()
}

// Buffer собирает вывод в потокобезопасный буфер.
type Buffer struct {
	mu    sync.Mutex
	lines []string
	part  []byte
}

// Write реализует io.Writer, разбивая поток на строки.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, c := range p {
		if c == '\n' {
			b.lines = append(b.lines, string(b.part))
			b.part = b.part[:0]
			continue
		}
		b.part = append(b.part, c)
	}
	return len(p), nil
}

// Lines возвращает копию уже завершенных строк.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}
