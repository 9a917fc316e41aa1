package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backend names
const (
	BackendBoltDB = "boltdb"
	BackendSQLite = "sqlite"
)

// Config holds all client configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Sync    SyncConfig    `mapstructure:"sync"`
	Debug   bool          `mapstructure:"debug"`
}

// ServerConfig holds library server configuration
type ServerConfig struct {
	URL                 string `mapstructure:"url"`                   // Server URL
	TimeoutSeconds      int    `mapstructure:"timeout_seconds"`       // per-request network timeout
	DebugTimeoutSeconds int    `mapstructure:"debug_timeout_seconds"` // shorter timeout used in debug mode
}

// StorageConfig holds local storage configuration
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // "boltdb" or "sqlite"
	Path    string `mapstructure:"path"`    // path to the database file
}

// SyncConfig holds retry policy tunables
type SyncConfig struct {
	MaxRetries  int `mapstructure:"max_retries"`   // повторы после первой попытки
	BaseDelayMS int `mapstructure:"base_delay_ms"` // базовая задержка backoff
}

// Load читает конфигурацию из файла (если указан или найден),
// переменных окружения SHELFSYNC_* и значений по умолчанию.
// Отсутствие файла конфигурации не является ошибкой.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.url", "http://localhost:8080")
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.debug_timeout_seconds", 10)
	v.SetDefault("storage.backend", BackendBoltDB)
	v.SetDefault("storage.path", defaultDBPath())
	v.SetDefault("sync.max_retries", 3)
	v.SetDefault("sync.base_delay_ms", 1000)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("SHELFSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		// Явно указанный файл обязан существовать
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("shelfsync")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "shelfsync"))
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			// Файла нет - работаем на значениях по умолчанию
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Storage.Backend != BackendBoltDB && cfg.Storage.Backend != BackendSQLite {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return &cfg, nil
}

// HTTPTimeout возвращает таймаут одного сетевого запроса.
// В debug режиме используется укороченный таймаут.
func (c *Config) HTTPTimeout() time.Duration {
	if c.Debug {
		return time.Duration(c.Server.DebugTimeoutSeconds) * time.Second
	}
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}

// BaseDelay возвращает базовую задержку backoff
func (c *Config) BaseDelay() time.Duration {
	return time.Duration(c.Sync.BaseDelayMS) * time.Millisecond
}

// defaultDBPath returns the default database file path for the current OS
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shelfsync.db"
	}
	return filepath.Join(home, ".local", "share", "shelfsync", "shelfsync.db")
}
