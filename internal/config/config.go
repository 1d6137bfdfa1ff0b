package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Auth Config
	APIKeys   []string `env:"API_KEYS"`
	JWTSecret string   `env:"JWT_SECRET"`

	// Geofence Config
	GeofenceCacheTTL time.Duration `env:"GEOFENCE_CACHE_TTL" envDefault:"5m"`
	MaxSpeedKmh      float64       `env:"MAX_SPEED_KMH" envDefault:"60"`

	// Public registry rate limit
	PublicRateLimitRPS   float64 `env:"PUBLIC_RATE_LIMIT_RPS" envDefault:"5"`
	PublicRateLimitBurst int     `env:"PUBLIC_RATE_LIMIT_BURST" envDefault:"10"`

	Telemetry TelemetryConfig
}

// TelemetryConfig - настройки сервиса синхронизации телеметрии
type TelemetryConfig struct {
	ProviderURL      string        `env:"TELEMETRY_PROVIDER_URL"`
	ProviderToken    string        `env:"TELEMETRY_PROVIDER_TOKEN"`
	IngestURL        string        `env:"TELEMETRY_INGEST_URL"`
	IngestAPIKey     string        `env:"TELEMETRY_INGEST_API_KEY"`
	PollInterval     time.Duration `env:"TELEMETRY_POLL_INTERVAL" envDefault:"30s"`
	ForwardAttempts  int           `env:"TELEMETRY_FORWARD_ATTEMPTS" envDefault:"3"`
	ForwardBaseDelay time.Duration `env:"TELEMETRY_FORWARD_BASE_DELAY" envDefault:"1s"`
	MaxBatchSize     int           `env:"TELEMETRY_MAX_BATCH" envDefault:"1000"`
	HTTPTimeout      time.Duration `env:"TELEMETRY_HTTP_TIMEOUT" envDefault:"10s"`
}

// LoadConfig загружает конфигурацию API из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// LoadSyncConfig загружает конфигурацию процесса синхронизации телеметрии.
// База данных этому процессу не нужна.
func LoadSyncConfig() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if cfg.Telemetry.ProviderURL == "" {
		return nil, fmt.Errorf("TELEMETRY_PROVIDER_URL environment variable is required")
	}
	if cfg.Telemetry.IngestURL == "" {
		return nil, fmt.Errorf("TELEMETRY_INGEST_URL environment variable is required")
	}

	return cfg, nil
}

func load() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		WebhookURL:           os.Getenv("WEBHOOK_URL"),
		WebhookSecret:        os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:       getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:    getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:     getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		APIKeys:              getEnvAsList("API_KEYS"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		GeofenceCacheTTL:     getEnvAsDuration("GEOFENCE_CACHE_TTL", 5*time.Minute),
		MaxSpeedKmh:          getEnvAsFloat("MAX_SPEED_KMH", 60),
		PublicRateLimitRPS:   getEnvAsFloat("PUBLIC_RATE_LIMIT_RPS", 5),
		PublicRateLimitBurst: getEnvAsInt("PUBLIC_RATE_LIMIT_BURST", 10),
		Telemetry: TelemetryConfig{
			ProviderURL:      os.Getenv("TELEMETRY_PROVIDER_URL"),
			ProviderToken:    os.Getenv("TELEMETRY_PROVIDER_TOKEN"),
			IngestURL:        os.Getenv("TELEMETRY_INGEST_URL"),
			IngestAPIKey:     os.Getenv("TELEMETRY_INGEST_API_KEY"),
			PollInterval:     getEnvAsDuration("TELEMETRY_POLL_INTERVAL", 30*time.Second),
			ForwardAttempts:  getEnvAsInt("TELEMETRY_FORWARD_ATTEMPTS", 3),
			ForwardBaseDelay: getEnvAsDuration("TELEMETRY_FORWARD_BASE_DELAY", time.Second),
			MaxBatchSize:     getEnvAsInt("TELEMETRY_MAX_BATCH", 1000),
			HTTPTimeout:      getEnvAsDuration("TELEMETRY_HTTP_TIMEOUT", 10*time.Second),
		},
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
