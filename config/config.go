package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a local .env file into the process environment when one is
// present. Deployed instances are expected to inject DATABASE_URL, JWT_SECRET
// and friends directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}
}

// GetEnv returns the named variable, or the fallback when it is unset
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
