package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	BackendJSON   = "json"
	BackendSqlite = "sqlite"

	defaultJSONFile   = "employees.json"
	defaultSqliteFile = "employees.db"
)

type Config struct {
	Backend  string
	DataFile string
}

// LoadConfig resolves the store backend and data file path. Explicit
// arguments win over environment variables, which win over defaults.
func LoadConfig(backend, dataFile string) (*Config, error) {
	_ = godotenv.Load()

	if backend == "" {
		backend = os.Getenv("EMPLOYEE_STORE_BACKEND")
	}
	if backend == "" {
		backend = BackendJSON
	}
	if backend != BackendJSON && backend != BackendSqlite {
		return nil, ErrUnknownBackend{Backend: backend}
	}

	if dataFile == "" {
		dataFile = os.Getenv("EMPLOYEE_DATA_FILE")
	}
	if dataFile == "" {
		dataFile = defaultJSONFile
		if backend == BackendSqlite {
			dataFile = defaultSqliteFile
		}
	}

	return &Config{Backend: backend, DataFile: dataFile}, nil
}

type ErrUnknownBackend struct {
	Backend string
}

func (e ErrUnknownBackend) Error() string {
	return fmt.Sprintf("unsupported store backend %q, want %q or %q", e.Backend, BackendJSON, BackendSqlite)
}
