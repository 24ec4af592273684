// Package settings persists user preferences in the same key/value
// namespace as the habit records, under keys the habit repository's
// enumeration filter ignores.
package settings

import (
	"context"
	"fmt"

	"habitkeep/internal/storage"
)

// themeKey is the store key for the selected theme. It deliberately does
// not match the habit-id pattern, exercising the shared-namespace contract:
// reset and enumeration must leave it alone.
const themeKey = "selectedTheme"

// DefaultTheme is reported when no theme has been saved.
const DefaultTheme = "default"

// KnownThemes are the themes the UI ships stylesheets for. SetTheme rejects
// anything else.
var KnownThemes = []string{DefaultTheme, "pink", "tritons"}

// Store reads and writes preferences over a storage adapter.
type Store struct {
	store storage.Adapter
}

// NewStore creates a settings store over the given adapter.
func NewStore(store storage.Adapter) *Store {
	return &Store{store: store}
}

// Theme returns the saved theme, or DefaultTheme when none is saved.
func (s *Store) Theme(ctx context.Context) (string, error) {
	v, ok, err := s.store.Get(ctx, themeKey)
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	if !ok || v == "" {
		return DefaultTheme, nil
	}
	return v, nil
}

// SetTheme saves the theme. Only known themes are accepted.
func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if !isKnownTheme(theme) {
		return fmt.Errorf("unknown theme %q: must be one of %v", theme, KnownThemes)
	}
	if err := s.store.Set(ctx, themeKey, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

func isKnownTheme(theme string) bool {
	for _, t := range KnownThemes {
		if t == theme {
			return true
		}
	}
	return false
}
