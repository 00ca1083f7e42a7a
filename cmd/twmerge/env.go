package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables providing option defaults.
const (
	envPrefix    = "TWMERGE_PREFIX"
	envSeparator = "TWMERGE_SEPARATOR"
	envConfig    = "TWMERGE_CONFIG"
	envAddr      = "TWMERGE_ADDR"
)

// loadEnv reads .env files, by default ".env" in the working directory.
// Missing files are skipped. Variables already set in the environment are
// not overridden.
func loadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading %s: %w", f, err)
		}
	}
	return nil
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
