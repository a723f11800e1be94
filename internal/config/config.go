package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	RedisAddr string

	// Simulation defaults applied when a request leaves them unset.
	DefaultTrials  int
	DefaultWorkers int
	QueueSize      int
}

func Load() *Config {
	// Optional .env for local runs; real deployments set the environment.
	godotenv.Load()

	cfg := &Config{
		DBPath:         getEnv("DB_PATH", "runs.sqlite"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		DefaultTrials:  getEnvInt("SIM_TRIALS", 1000),
		DefaultWorkers: getEnvInt("SIM_WORKERS", 4),
		QueueSize:      getEnvInt("SIM_QUEUE_SIZE", 64),
	}

	if os.Getenv("API_KEY") == "" || os.Getenv("ADMIN_TOKEN") == "" {
		log.Fatal("Missing critical environment variables")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
