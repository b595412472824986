package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that supply CLI flag defaults.
const (
	EnvDBPath   = "LAZE_DB"
	EnvSSHAddr  = "LAZE_SSH_ADDR"
	EnvHTTPAddr = "LAZE_HTTP_ADDR"
	EnvConfig   = "LAZE_CONFIG"
)

// LoadEnv reads .env files into the process environment. Variables already
// set are left alone. A missing file is not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// EnvOr returns the value of key, or def when it is unset or empty.
func EnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
