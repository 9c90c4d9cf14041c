package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/iudanet/recordsync/internal/mapping"
)

// Config содержит настройки процесса синхронизации
type Config struct {
	DBPath       string          `validate:"required"`
	MetaDBPath   string          `validate:"required"`
	RemoteFile   string          `validate:"required"`
	MappingsFile string          `validate:"required"`
	LogLevel     string          `validate:"oneof=debug info warn error"`
	Mappings     []MappingConfig `validate:"required,min=1,unique=Name,dive"`
	Workers      int             `validate:"min=1,max=64"`
}

// MappingConfig объявляет синхронизацию локальной модели с типом удаленных объектов
type MappingConfig struct {
	Fields     map[string]string `json:"fields" validate:"required,min=1,dive,keys,required,endkeys,required"`
	Name       string            `json:"name" validate:"required"`
	ObjectType string            `json:"object_type" validate:"required"`
	RemoteType string            `json:"remote_type" validate:"required"`
}

// Build строит таблицу соответствия атрибутов
func (m MappingConfig) Build() (*mapping.Mapping, error) {
	table, err := mapping.New(m.Fields)
	if err != nil {
		return nil, fmt.Errorf("mapping %q: %w", m.Name, err)
	}
	return table, nil
}

// Load читает настройки из окружения (и .env, если он есть)
// Mappings не загружаются - см. LoadMappings
func Load() *Config {
	// Отсутствие .env - не ошибка
	_ = godotenv.Load()

	return &Config{
		DBPath:       getEnv("RECORDSYNC_DB", "recordsync.db"),
		MetaDBPath:   getEnv("RECORDSYNC_META_DB", "recordsync-meta.db"),
		RemoteFile:   getEnv("RECORDSYNC_REMOTE_FILE", "remote.json"),
		MappingsFile: getEnv("RECORDSYNC_MAPPINGS", "mappings.json"),
		Workers:      getEnvAsInt("RECORDSYNC_WORKERS", 4),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// LoadMappings читает объявления mapping из JSON файла MappingsFile
func (c *Config) LoadMappings() error {
	data, err := os.ReadFile(c.MappingsFile)
	if err != nil {
		return fmt.Errorf("failed to read mappings: %w", err)
	}

	var mappings []MappingConfig
	if err := json.Unmarshal(data, &mappings); err != nil {
		return fmt.Errorf("failed to unmarshal mappings: %w", err)
	}

	c.Mappings = mappings
	return nil
}

// Validate проверяет настройки
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// 1:1 соответствие проверяется построением таблицы
	for _, m := range c.Mappings {
		if _, err := m.Build(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	return nil
}

// SlogLevel возвращает уровень логирования для slog
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
