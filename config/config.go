package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Addr             string
	APIBaseURL       string
	APITimeout       time.Duration
	SessionTTL       time.Duration
	OrderEventsTopic string
	PublicURL        string
	ExportTimezone   string
	AuditEnabled     bool
	EventsEnabled    bool
}

func Load() Config {
	return Config{
		Addr:             getEnv("CONSOLE_ADDR", ":8084"),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:5179/api"),
		APITimeout:       getDuration("API_TIMEOUT", 10*time.Second),
		SessionTTL:       getDuration("SESSION_TTL", 8*time.Hour),
		OrderEventsTopic: getEnv("ORDER_EVENTS_TOPIC", "console-order-events"),
		PublicURL:        getEnv("CONSOLE_PUBLIC_URL", "http://localhost:8084"),
		ExportTimezone:   getEnv("EXPORT_TIMEZONE", "UTC"),
		AuditEnabled:     getBool("AUDIT_ENABLED", os.Getenv("DB_HOST") != ""),
		EventsEnabled:    getBool("ORDER_EVENTS_ENABLED", os.Getenv("KAFKA_BROKER") != ""),
	}
}

// NewLogger returns an entry tagged with the service name; LOG_LEVEL and
// LOG_FORMAT=json tune it.
func NewLogger(service string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}
	if os.Getenv("LOG_FORMAT") == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger.WithField("service", service)
}

func MustInitPostgres(log *logrus.Entry) *sql.DB {
	connStr := "host=" + os.Getenv("DB_HOST") + " port=" + os.Getenv("DB_PORT") +
		" user=" + os.Getenv("DB_USER") + " password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + os.Getenv("DB_NAME") + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.WithError(err).Fatal("failed to ping database")
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(log *logrus.Entry) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}

	return client
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}
