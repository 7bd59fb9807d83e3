package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmynk/secretsanta/internal/storage/jsonfile"
	"github.com/mmynk/secretsanta/pkg/logging"
)

// config holds the server settings read from the environment.
type config struct {
	Addr        string
	DataFile    string
	LockTimeout time.Duration
	NoLock      bool
	Log         logging.Options
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// loadConfig reads the environment, after applying envFiles that exist.
// Variables already set in the environment take precedence over the files.
func loadConfig(envFiles ...string) (config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := config{
		Addr:        getEnv("ADDR", ":8080"),
		DataFile:    getEnv("DATA_FILE", "./data/groups.json"),
		LockTimeout: jsonfile.DefaultLockTimeout,
		NoLock:      getEnv("DATA_FILE_NO_LOCK", "") == "true",
		Log:         logging.OptionsFromEnv(),
	}
	if v := os.Getenv("LOCK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return config{}, fmt.Errorf("invalid LOCK_TIMEOUT %q", v)
		}
		cfg.LockTimeout = d
	}
	return cfg, nil
}
