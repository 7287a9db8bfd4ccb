package state

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Setting keys.
const (
	KeyRoot   = "root"
	KeyVolume = "volume"
)

// Get returns the value stored under key. ok is false when the key is unset.
func (m *Manager) Get(key string) (value string, ok bool, err error) {
	err = m.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (m *Manager) Set(key, value string) error {
	_, err := m.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// GetFloat returns the number stored under key.
func (m *Manager) GetFloat(key string) (float64, bool, error) {
	s, ok, err := m.Get(key)
	if err != nil || !ok {
		return 0, false, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("setting %s: %w", key, err)
	}
	return f, true, nil
}

func (m *Manager) SetFloat(key string, value float64) error {
	return m.Set(key, strconv.FormatFloat(value, 'g', -1, 64))
}
