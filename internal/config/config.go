package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/events"
	"github.com/joho/godotenv"
)

var ErrMissingMongoURI = errors.New("MONGODB_URI is required")

type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	// Optional backends; empty means disabled.
	RedisAddr      string
	RedisPassword  string
	KafkaBrokers   []string
	KafkaTopic     string
	GRPCHealthPort string

	HealthInterval     time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64
}

// Load reads the process environment, after merging a .env file from the
// working directory if there is one. Variables already set win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to read .env: %v", err)
	}

	cfg := &Config{
		Port:               getEnv("PORT", "5000"),
		MongoURI:           os.Getenv("MONGODB_URI"),
		MongoDB:            getEnv("MONGODB_DB", "productHub"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		KafkaBrokers:       splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:         getEnv("KAFKA_TOPIC", events.DefaultTopic),
		GRPCHealthPort:     os.Getenv("GRPC_HEALTH_PORT"),
		HealthInterval:     15 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 1 << 20, // 1MB
	}

	if cfg.MongoURI == "" {
		return nil, ErrMissingMongoURI
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
