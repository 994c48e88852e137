package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr       string
	DatabaseFilepath string
	WorkbookDir      string
	LogLevel         string
}

// LoadConfig reads settings from the environment, with a .env file as
// fallback for local development. A missing .env is not an error.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		ListenAddr:       envOrDefault("LISTEN_ADDR", ":8080"),
		DatabaseFilepath: os.Getenv("DATABASE_FILEPATH"),
		WorkbookDir:      envOrDefault("WORKBOOK_DIR", "workbooks"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
	}
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
