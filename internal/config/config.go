package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env               string // dev, prod
	LogLevel          string // logrus level name
	LogFormat         string // text or json
	NewPatientPrompts int    // how many times the add-patient workflow runs
	SeedDoctors       int    // doctors generated by cmd/seed
	SeedPatients      int    // patients generated by cmd/seed
	SeedRandom        int64  // gofakeit seed, 0 means time based
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:               getEnv("APP_ENV", "dev"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		NewPatientPrompts: getCount("NEW_PATIENT_PROMPTS", 2),
		SeedDoctors:       getCount("SEED_DOCTORS", 3),
		SeedPatients:      getCount("SEED_PATIENTS", 5),
	}

	if v := os.Getenv("SEED_RANDOM"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEED_RANDOM: %w", err)
		}
		cfg.SeedRandom = n
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getCount reads a non-negative integer, falling back on anything else.
func getCount(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
		fmt.Fprintf(os.Stderr, "invalid count for %s=%q, using default %d\n", key, v, def)
	}
	return def
}
