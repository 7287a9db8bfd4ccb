package collection

import (
	"encoding/json"
	"fmt"
)

// storeKey is the settings key holding the collection document.
const storeKey = "collections"

// KV is a string key-value store. *state.Manager implements it.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store persists a Library as one JSON document.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load returns the saved library, or an empty one when nothing was saved.
func (s *Store) Load() (*Library, error) {
	doc, ok, err := s.kv.Get(storeKey)
	if err != nil {
		return nil, fmt.Errorf("read collections: %w", err)
	}
	if !ok || doc == "" {
		return &Library{}, nil
	}
	var snaps []Snapshot
	if err := json.Unmarshal([]byte(doc), &snaps); err != nil {
		return nil, fmt.Errorf("decode collections: %w", err)
	}
	return LibraryFromSnapshot(snaps), nil
}

// Save writes the whole library.
func (s *Store) Save(l *Library) error {
	doc, err := json.Marshal(l.Snapshot())
	if err != nil {
		return fmt.Errorf("encode collections: %w", err)
	}
	if err := s.kv.Set(storeKey, string(doc)); err != nil {
		return fmt.Errorf("write collections: %w", err)
	}
	return nil
}
