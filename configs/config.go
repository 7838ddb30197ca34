package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from .env, falling back to the process environment.
func Config(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, falling back to system environment variables")
	}

	return os.Getenv(key)
}
