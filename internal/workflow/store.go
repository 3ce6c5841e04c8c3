// Package workflow keeps each user's last generation result per tool, so a
// downstream tool in the chain can read the upstream output without the
// client re-submitting it.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brandtools-be/internal/cache"
)

// ErrNoEntry is returned when a user has no saved result for a tool.
var ErrNoEntry = errors.New("no workflow entry for tool")

// Entries expire together with the session that produced them.
const entryTTL = 7 * 24 * time.Hour

// Entry is one saved tool result
type Entry struct {
	Tool    string         `json:"tool"`
	Result  map[string]any `json:"result"`
	SavedAt time.Time      `json:"savedAt"`
}

// Store is a keyed result store (user, tool) -> last result + timestamp
type Store struct {
	cache cache.Cache
}

func NewStore(c cache.Cache) *Store {
	return &Store{cache: c}
}

func key(userID, tool string) string {
	return fmt.Sprintf("workflow:%s:%s", userID, tool)
}

// Save overwrites the user's entry for the tool
func (s *Store) Save(ctx context.Context, userID, tool string, result map[string]any) error {
	entry := Entry{
		Tool:    tool,
		Result:  result,
		SavedAt: time.Now().UTC(),
	}
	if err := s.cache.SetJSON(ctx, key(userID, tool), entry, entryTTL); err != nil {
		return fmt.Errorf("failed to save workflow entry: %w", err)
	}
	return nil
}

// Get returns the user's saved entry for the tool
func (s *Store) Get(ctx context.Context, userID, tool string) (*Entry, error) {
	var entry Entry
	err := s.cache.GetJSON(ctx, key(userID, tool), &entry)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, ErrNoEntry
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow entry: %w", err)
	}
	return &entry, nil
}

// All returns every saved entry for the user, keyed by tool name
func (s *Store) All(ctx context.Context, userID string) (map[string]*Entry, error) {
	keys, err := s.cache.Keys(ctx, key(userID, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list workflow entries: %w", err)
	}

	entries := make(map[string]*Entry, len(keys))
	for _, k := range keys {
		var entry Entry
		if err := s.cache.GetJSON(ctx, k, &entry); err != nil {
			// Entry may have expired between the scan and the read
			if errors.Is(err, cache.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load workflow entry: %w", err)
		}
		entries[entry.Tool] = &entry
	}

	return entries, nil
}

// Clear removes every saved entry for the user
func (s *Store) Clear(ctx context.Context, userID string) error {
	keys, err := s.cache.Keys(ctx, key(userID, "*"))
	if err != nil {
		return fmt.Errorf("failed to list workflow entries: %w", err)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to clear workflow entries: %w", err)
	}
	return nil
}
