package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultCacheTTL = 24 * time.Hour

// settings are the environment defaults for command-line flags.
type settings struct {
	CacheDir string
	CacheTTL time.Duration
	Gateway  string
	Retries  uint

	// EnvFile reports whether a .env file was loaded.
	EnvFile bool
}

// loadSettings reads the optional .env file and then the environment.
func loadSettings() (*settings, error) {
	envFile := godotenv.Load() == nil

	s := &settings{
		EnvFile:  envFile,
		CacheDir: os.Getenv("BNETSCRAPER_CACHE_DIR"),
		CacheTTL: defaultCacheTTL,
		Gateway:  getEnv("BNETSCRAPER_GATEWAY", "us"),
		Retries:  1,
	}
	if v := os.Getenv("BNETSCRAPER_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("BNETSCRAPER_CACHE_TTL: %w", err)
		}
		s.CacheTTL = d
	}
	if v := os.Getenv("BNETSCRAPER_RETRIES"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("BNETSCRAPER_RETRIES: %w", err)
		}
		s.Retries = uint(n)
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
