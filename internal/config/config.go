package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
// Ключи строятся из имён полей: AGENDA_CLINIC_API_URL, AGENDA_REDIS_ADDR, AGENDA_DATABASE_SSL_MODE
const EnvPrefix = "AGENDA"

const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
	CacheDriverNone   = "none"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server    ServerConfig    `toml:"server" split_words:"true"`
	Logs      LogsConfig      `toml:"logs" split_words:"true"`
	Metrics   MetricsConfig   `toml:"metrics" split_words:"true"`
	ClinicAPI ClinicAPIConfig `toml:"clinic_api" split_words:"true"`
	Database  DatabaseConfig  `toml:"database" split_words:"true"`
	Cache     CacheConfig     `toml:"cache" split_words:"true"`
	Redis     RedisConfig     `toml:"redis" split_words:"true"`
	Lock      LockConfig      `toml:"lock" split_words:"true"`
	Calendar  CalendarConfig  `toml:"calendar" split_words:"true"`
	RateLimit RateLimitConfig `toml:"rate_limit" split_words:"true"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

type LogsConfig struct {
	File  string `toml:"file" split_words:"true"`
	Level string `toml:"level" split_words:"true"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
}

// ClinicAPIConfig адрес бэкенда клиники, таймауты в секундах
type ClinicAPIConfig struct {
	URL                string `toml:"url" split_words:"true"`
	Timeout            int    `toml:"timeout" split_words:"true"`
	ServiceToken       string `toml:"service_token" split_words:"true"`
	BreakerMaxFailures uint32 `toml:"breaker_max_failures" split_words:"true"`
	BreakerOpenTimeout int    `toml:"breaker_open_timeout" split_words:"true"`
}

// DatabaseConfig хранилище снимков настроек, выключено - снимки не сохраняются
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled" split_words:"true"`
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// CacheConfig кэш данных дня (приёмы и блокировки), TTL в секундах
type CacheConfig struct {
	Driver          string `toml:"driver" split_words:"true"`
	TTL             int    `toml:"ttl" split_words:"true"`
	CleanupInterval int    `toml:"cleanup_interval" split_words:"true"`
}

type RedisConfig struct {
	Addr     string `toml:"addr" split_words:"true"`
	Password string `toml:"password" split_words:"true"`
	DB       int    `toml:"db" split_words:"true"`
	PoolSize int    `toml:"pool_size" split_words:"true"`
}

// LockConfig блокировка агенды при записи приёма, TTL в секундах
type LockConfig struct {
	Driver string `toml:"driver" split_words:"true"`
	TTL    int    `toml:"ttl" split_words:"true"`
}

type CalendarConfig struct {
	Timezone string `toml:"timezone" split_words:"true"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled" split_words:"true"`
	RPS     float64 `toml:"rps" split_words:"true"`
	Burst   int     `toml:"burst" split_words:"true"`
}

// Default значения для полей, не заданных в файле
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "agenda_service",
			Path:        "/metrics",
		},
		ClinicAPI: ClinicAPIConfig{
			Timeout:            5,
			BreakerMaxFailures: 5,
			BreakerOpenTimeout: 30,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Cache: CacheConfig{
			Driver:          CacheDriverMemory,
			TTL:             60,
			CleanupInterval: 300,
		},
		Redis: RedisConfig{Addr: "localhost:6379", PoolSize: 10},
		Lock:  LockConfig{Driver: CacheDriverMemory, TTL: 10},
		Calendar: CalendarConfig{
			Timezone: "America/Sao_Paulo",
		},
		RateLimit: RateLimitConfig{RPS: 50, Burst: 100},
	}
}

// Load читает config.toml и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, без которых сервис не стартует
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.ClinicAPI.URL == "" {
		return fmt.Errorf("%w: clinic_api.url is required", ErrInvalidConfig)
	}
	switch c.Cache.Driver {
	case CacheDriverRedis, CacheDriverMemory, CacheDriverNone:
	default:
		return fmt.Errorf("%w: unknown cache.driver %q", ErrInvalidConfig, c.Cache.Driver)
	}
	switch c.Lock.Driver {
	case CacheDriverRedis, CacheDriverMemory:
	default:
		return fmt.Errorf("%w: unknown lock.driver %q", ErrInvalidConfig, c.Lock.Driver)
	}
	if c.Lock.TTL <= 0 {
		return fmt.Errorf("%w: lock.ttl must be positive", ErrInvalidConfig)
	}
	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("%w: calendar.timezone: %v", ErrInvalidConfig, err)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalidConfig)
	}
	return nil
}

// Location часовой пояс клиники, пустое значение - локальный
func (c CalendarConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// UsesRedis нужен ли клиент Redis для выбранных драйверов
func (c *Config) UsesRedis() bool {
	return c.Cache.Driver == CacheDriverRedis || c.Lock.Driver == CacheDriverRedis
}
