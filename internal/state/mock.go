package state

import (
	"database/sql"
	"fmt"
	"strconv"
)

// Mock is an in-memory settings store for tests. DB returns nil.
type Mock struct {
	values map[string]string
	closed bool

	// SetErr, when non-nil, is returned by Set and SetFloat.
	SetErr error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{values: make(map[string]string)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Mock) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.values[key] = value
	return nil
}

func (m *Mock) GetFloat(key string) (float64, bool, error) {
	v, ok := m.values[key]
	if !ok {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("setting %s: %w", key, err)
	}
	return f, true, nil
}

func (m *Mock) SetFloat(key string, value float64) error {
	return m.Set(key, strconv.FormatFloat(value, 'g', -1, 64))
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}
