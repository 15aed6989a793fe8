package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	DataDir        string
	LogFile        string
	SessionSecret  string
	PasswordScheme string
	LoginRate      float64
	LoginBurst     int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getenv("APP_ENV", "development"),
		DataDir:        getenv("DATA_DIR", "data"),
		LogFile:        getenv("LOG_FILE", "tillbox.log"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		PasswordScheme: getenv("PASSWORD_SCHEME", "legacy"),
		LoginRate:      getfloat("LOGIN_RATE", 2),
		LoginBurst:     getint("LOGIN_BURST", 5),
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("data directory %q is not usable: %v", cfg.DataDir, err)
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getfloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
