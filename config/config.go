package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Config struct {
	Port          string
	MigrationsURL string
	CheckoutDelay time.Duration
	Database      Database
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Println("no .env file found, reading environment directly")
	}

	return Config{
		Port:          getEnv("SERVER_PORT", "8080"),
		MigrationsURL: getEnv("MIGRATIONS_URL", "file://database/migrations"),
		CheckoutDelay: getDuration("CHECKOUT_DELAY_SECONDS", 2),
		Database: Database{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "parrilleros"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallbackSeconds int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallbackSeconds) * time.Second
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		logrus.Printf("invalid %s=%q, using default", key, v)
		return time.Duration(fallbackSeconds) * time.Second
	}
	return time.Duration(secs) * time.Second
}
