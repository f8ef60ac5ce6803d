package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the library manager. All values
// come from the environment, optionally seeded from .env files.
type Config struct {
	DataDir          string
	BooksFile        string
	MembersFile      string
	TransactionsFile string
	LogLevel         string
}

// Load reads .env files and the environment and returns the effective
// configuration. Real environment variables always win over .env files.
func Load() (Config, error) {
	loadEnvFiles()

	cfg := Config{
		DataDir:          getEnv("LIBRARY_DATA_DIR", "."),
		BooksFile:        getEnv("LIBRARY_BOOKS_FILE", "books.txt"),
		MembersFile:      getEnv("LIBRARY_MEMBERS_FILE", "members.txt"),
		TransactionsFile: getEnv("LIBRARY_TRANSACTIONS_FILE", "transactions.log"),
		LogLevel:         getEnv("LIBRARY_LOG_LEVEL", "warn"),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid LIBRARY_LOG_LEVEL %q", cfg.LogLevel)
	}

	return cfg, nil
}

// BooksPath returns the full path of the book snapshot file.
func (c Config) BooksPath() string {
	return filepath.Join(c.DataDir, c.BooksFile)
}

// MembersPath returns the full path of the member snapshot file.
func (c Config) MembersPath() string {
	return filepath.Join(c.DataDir, c.MembersFile)
}

// TransactionsPath returns the full path of the transaction log file.
func (c Config) TransactionsPath() string {
	return filepath.Join(c.DataDir, c.TransactionsFile)
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
