package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendJSONFile = "jsonfile"
	BackendPostgres = "postgres"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Store  StoreConfig
	Mail   MailConfig
	Kafka  KafkaConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig selects the order store backend. The JSON file backend is
// the default; Postgres is opt-in via STORE_BACKEND.
type StoreConfig struct {
	Backend    string
	OrdersFile string
	DB         PostgresConfig
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

// MailConfig drives notification dispatch. An empty Endpoint switches
// the notifier to the simulated (log-only) transport.
type MailConfig struct {
	Endpoint   string
	AdminEmail string
	FromName   string
	TimeoutMS  int
	Workers    int
}

// KafkaConfig is optional; an empty broker list disables the order
// event pipeline entirely.
type KafkaConfig struct {
	Brokers       []string
	OrderTopic    string
	ConsumerGroup string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "checkout"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8003),
		},
		Store: StoreConfig{
			Backend:    getEnv("STORE_BACKEND", BackendJSONFile),
			OrdersFile: getEnv("ORDERS_FILE", "data/orders.json"),
			DB: PostgresConfig{
				Host:     getEnv("POSTGRES_HOST", "localhost"),
				Port:     getEnvAsInt("POSTGRES_PORT", 5432),
				User:     getEnv("POSTGRES_USER", "postgres"),
				Password: getEnv("POSTGRES_PASSWORD", ""),
				DBName:   getEnv("POSTGRES_DB", "postgres"),
				SSLMode:  getEnv("DB_SSLMODE", "disable"),
				MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			},
		},
		Mail: MailConfig{
			Endpoint:   getEnv("EMAIL_ENDPOINT", ""),
			AdminEmail: getEnv("ADMIN_EMAIL", "admin@university.edu"),
			FromName:   getEnv("FROM_NAME", "University Card Authority"),
			TimeoutMS:  getEnvAsInt("EMAIL_TIMEOUT_MS", 8000),
			Workers:    getEnvAsInt("EMAIL_WORKERS", 4),
		},
		Kafka: KafkaConfig{
			Brokers:       splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "")),
			OrderTopic:    getEnv("KAFKA_ORDER_TOPIC", "orders.placed"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "order-events"),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// Enabled reports whether the event pipeline is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	switch c.Store.Backend {
	case BackendJSONFile:
		if c.Store.OrdersFile == "" {
			return fmt.Errorf("ORDERS_FILE is empty")
		}
	case BackendPostgres:
		if c.Store.DB.Host == "" || c.Store.DB.User == "" || c.Store.DB.DBName == "" {
			return fmt.Errorf("database config is incomplete")
		}
	default:
		return fmt.Errorf("STORE_BACKEND %q is not supported", c.Store.Backend)
	}
	if c.Mail.TimeoutMS <= 0 {
		return fmt.Errorf("EMAIL_TIMEOUT_MS must be positive")
	}
	if c.Kafka.Enabled() && c.Kafka.OrderTopic == "" {
		return fmt.Errorf("KAFKA_ORDER_TOPIC is empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
