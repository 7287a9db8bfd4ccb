package state

import (
	"database/sql"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	Get(key string) (string, bool, error)
	Set(key, value string) error
	GetFloat(key string) (float64, bool, error)
	SetFloat(key string, value float64) error
	Close() error
}

// Verify implementations at compile time.
var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)
