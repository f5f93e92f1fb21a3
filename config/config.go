package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Redis
	Session
	Admin
	Consumer
	Decision
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	RequestsTopic string `env:"KAFKA_LOAN_REQUESTS_TOPIC" envDefault:"loans.requests"`
	StatusTopic   string `env:"KAFKA_LOAN_STATUS_TOPIC" envDefault:"loans.status"`
	DLQTopic      string `env:"KAFKA_DLQ_TOPIC" envDefault:"loans.dlq"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Redis struct {
	Addr        string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL" envDefault:"15m"`
}

type Session struct {
	TTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
}

type Admin struct {
	URL     string        `env:"ADMIN_URL" envDefault:"http://localhost:8001"`
	Timeout time.Duration `env:"ADMIN_TIMEOUT" envDefault:"5s"`
}

type Consumer struct {
	BatchSize       int           `env:"CONSUMER_BATCH_SIZE" envDefault:"100"`
	PollInterval    time.Duration `env:"CONSUMER_POLL_INTERVAL" envDefault:"1s"`
	EmptyInterval   time.Duration `env:"CONSUMER_EMPTY_INTERVAL" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"CONSUMER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type Decision struct {
	// MaxAmount above which the automatic policy denies a request.
	// Zero disables the threshold so every request is approved.
	MaxAmount float64 `env:"DECISION_MAX_AMOUNT" envDefault:"0"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
