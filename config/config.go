package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxOpenConns int
	DBMaxIdleConns int

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration

	// SearchLimit caps the number of rows a search may return. 0 disables the cap.
	SearchLimit int

	StaticDir string

	// RabbitURL enables activity publishing when non-empty.
	RabbitURL string
}

func Load() *Config {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("PORT", "3000"),

		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "charityevents"),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),

		HTTPReadTimeout:  getEnvAsDuration("HTTP_READ_TIMEOUT", "15s"),
		HTTPWriteTimeout: getEnvAsDuration("HTTP_WRITE_TIMEOUT", "15s"),

		SearchLimit: getEnvAsInt("SEARCH_LIMIT", 100),

		StaticDir: getEnv("STATIC_DIR", "web/static"),

		RabbitURL: getEnv("RABBITMQ_URL", ""),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	if duration, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
