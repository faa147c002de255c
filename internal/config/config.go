// Package config собирает конфигурацию демо-клиента и тестового сервера
// из флагов командной строки и переменных окружения.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v6"
)

// Значения по умолчанию
const (
	DefaultTargetBaseURL = "https://jsonplaceholder.typicode.com"
	DefaultServerAddress = "127.0.0.1:8080"
	DefaultLogLevel      = "info"
)

// Config хранит конфигурацию приложения.
type Config struct {
	TargetBaseURL   string `env:"TARGET_BASE_URL"`           // Базовый адрес, с которого забираются todo
	TodoIDs         []int  `env:"TODO_IDS" envSeparator:","` // Идентификаторы todo для загрузки
	ServerAddress   string `env:"SERVER_ADDRESS"`            // Адрес для запуска HTTP-сервера
	FileStoragePath string `env:"FILE_STORAGE_PATH"`         // Путь к файлу с todo
	DatabaseDSN     string `env:"DATABASE_DSN"`              // Строка подключения к PostgreSQL
	EnableHTTPS     string `env:"ENABLE_HTTPS"`              // Любое непустое значение включает HTTPS
	TLSCertFile     string `env:"TLS_CERT_FILE"`             // Путь к сертификату
	TLSKeyFile      string `env:"TLS_KEY_FILE"`              // Путь к приватному ключу
	LogLevel        string `env:"LOG_LEVEL"`                 // Уровень логирования zap
	ShowVersion     bool   // Вывести информацию о сборке и выйти
}

// IsHTTPSEnabled сообщает, нужно ли запускать сервер по HTTPS.
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS != ""
}

// defaultConfig возвращает конфигурацию со значениями по умолчанию.
func defaultConfig() *Config {
	return &Config{
		TargetBaseURL: DefaultTargetBaseURL,
		TodoIDs:       []int{1, 2},
		ServerAddress: DefaultServerAddress,
		TLSCertFile:   "server.crt",
		TLSKeyFile:    "server.key",
		LogLevel:      DefaultLogLevel,
	}
}

// NewConfig инициализирует конфигурацию из os.Args и переменных окружения.
func NewConfig() (*Config, error) {
	return NewConfigFromArgs(os.Args[1:])
}

// NewConfigFromArgs разбирает переданные аргументы, после чего применяет
// переменные окружения. Переменные окружения имеют наивысший приоритет.
func NewConfigFromArgs(args []string) (*Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("todo_fetch", flag.ContinueOnError)
	fs.StringVar(&cfg.TargetBaseURL, "t", cfg.TargetBaseURL, "Базовый адрес сервиса todo (env: TARGET_BASE_URL)")
	fs.Var((*intList)(&cfg.TodoIDs), "ids", "Идентификаторы todo через запятую (env: TODO_IDS)")
	fs.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "Путь к файлу хранилища (env: FILE_STORAGE_PATH)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "Строка подключения к БД (env: DATABASE_DSN)")
	fs.StringVar(&cfg.EnableHTTPS, "s", cfg.EnableHTTPS, "Включить HTTPS (env: ENABLE_HTTPS)")
	fs.StringVar(&cfg.TLSCertFile, "cert", cfg.TLSCertFile, "TLS сертификат (env: TLS_CERT_FILE)")
	fs.StringVar(&cfg.TLSKeyFile, "key", cfg.TLSKeyFile, "TLS ключ (env: TLS_KEY_FILE)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Уровень логирования (env: LOG_LEVEL)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Показать информацию о сборке")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	if len(cfg.TodoIDs) == 0 {
		return nil, fmt.Errorf("at least one todo id is required")
	}

	return cfg, nil
}

// intList реализует flag.Value для списка целых чисел через запятую.
type intList []int

func (l *intList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, 0, len(*l))
	for _, v := range *l {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	var ids []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("invalid todo id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	*l = ids
	return nil
}
