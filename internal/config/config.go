package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix префикс переменных окружения, переопределяющих config.toml (VENUE_SERVER_HTTP_PORT и т.д.)
	EnvPrefix = "VENUE"

	SourceAPI      = "api"
	SourcePostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server" envconfig:"server"`
	Logs     LogsConfig     `toml:"logs" envconfig:"logs"`
	Metrics  MetricsConfig  `toml:"metrics" envconfig:"metrics"`
	Source   SourceConfig   `toml:"source" envconfig:"source"`
	VenueAPI VenueAPIConfig `toml:"venue_api" envconfig:"venue_api"`
	Database DatabaseConfig `toml:"database" envconfig:"database"`
	Calendar CalendarConfig `toml:"calendar" envconfig:"calendar"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" envconfig:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" envconfig:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" envconfig:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" envconfig:"shutdown_timeout" validate:"min=1"`
}

// LogsConfig настройки логирования. Пустой File - только stdout.
type LogsConfig struct {
	Level string `toml:"level" envconfig:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file" envconfig:"file"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"enabled"`
	Path        string `toml:"path" envconfig:"path" validate:"required,startswith=/"`
	ServiceName string `toml:"service_name" envconfig:"service_name" validate:"required"`
}

// SourceConfig откуда брать площадки и бронирования
type SourceConfig struct {
	Kind string `toml:"kind" envconfig:"kind" validate:"oneof=api postgres"`
}

// VenueAPIConfig настройки REST API площадок и бронирований (таймаут в секундах)
type VenueAPIConfig struct {
	URL     string `toml:"url" envconfig:"url" validate:"omitempty,url"`
	Timeout int    `toml:"timeout" envconfig:"timeout" validate:"min=1"`
	Token   string `toml:"token" envconfig:"token"`
}

// DatabaseConfig настройки PostgreSQL (ConnMaxLifetime в секундах)
type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"host"`
	Port            int    `toml:"port" envconfig:"port" validate:"omitempty,min=1,max=65535"`
	User            string `toml:"user" envconfig:"user"`
	Password        string `toml:"password" envconfig:"password"`
	DBName          string `toml:"dbname" envconfig:"dbname"`
	SSLMode         string `toml:"sslmode" envconfig:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"conn_max_lifetime" validate:"min=0"`
}

// CalendarConfig настройки календаря
type CalendarConfig struct {
	// DefaultCapacity ёмкость площадки без объявленных слотов
	DefaultCapacity int `toml:"default_capacity" envconfig:"default_capacity" validate:"min=1"`
}

var validate = validator.New()

// Load читает config.toml, затем .env (если есть) и переменные окружения с префиксом VENUE
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "venue-availability",
		},
		Source: SourceConfig{
			Kind: SourceAPI,
		},
		VenueAPI: VenueAPIConfig{
			Timeout: 5,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Calendar: CalendarConfig{
			DefaultCapacity: 4,
		},
	}
}

// Validate проверяет конфигурацию и возвращает все нарушения одной ошибкой
func (c *Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("config validation: %w", err)
		}
		for _, fe := range validationErrors {
			problems = append(problems, fmt.Sprintf("%s: failed on '%s'", fe.Namespace(), fe.Tag()))
		}
	}

	switch c.Source.Kind {
	case SourceAPI:
		if c.VenueAPI.URL == "" {
			problems = append(problems, "Config.VenueAPI.URL: required when source.kind is api")
		}
	case SourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
			problems = append(problems, "Config.Database: host, user and dbname are required when source.kind is postgres")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
