package habit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"habitkeep/internal/storage"
)

// KeyPrefix is the fixed literal prepended to generated ids so habit records
// can be told apart from unrelated keys in a shared namespace.
const KeyPrefix = "id"

// keyPattern matches a habit record key: the prefix plus a version-4-style
// UUID. Enumeration filters on this pattern; anything else in the store
// belongs to other tooling and is left alone.
var keyPattern = regexp.MustCompile(
	`^id[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`,
)

// IsHabitKey reports whether a store key names a habit record.
func IsHabitKey(key string) bool {
	return keyPattern.MatchString(key)
}

// IDSource produces fresh opaque id suffixes. Injected so tests can pin ids.
type IDSource func() string

// UUIDSource is the default IDSource, backed by crypto/rand UUIDv4.
func UUIDSource() string {
	return uuid.NewString()
}

// Entry pairs a habit with its store key, as returned by ListAll.
type Entry struct {
	ID    string
	Habit *Habit
}

// Repository owns habit identifiers, serialization, and raw CRUD over a
// storage adapter. It never assumes anything about the backend beyond the
// Adapter contract.
type Repository struct {
	store  storage.Adapter
	newID  IDSource
	logger *slog.Logger
}

// NewRepository creates a repository over the given adapter. A nil logger
// disables diagnostic output.
func NewRepository(store storage.Adapter, newID IDSource, logger *slog.Logger) *Repository {
	if newID == nil {
		newID = UUIDSource
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{store: store, newID: newID, logger: logger}
}

// Create validates the inputs, assigns a fresh prefixed id, and persists a
// new habit with streak 0 and an empty log starting at now. Returns the id.
//
// The name is NFC-normalized before persisting so that visually identical
// names compare equal regardless of how the input was composed.
func (r *Repository) Create(ctx context.Context, name, description string, frequencyDays int, now time.Time) (string, error) {
	if name == "" {
		return "", NewValidationError("habitName", "name must be a non-empty string")
	}
	if frequencyDays < 1 {
		return "", NewValidationError("habitFrequency",
			fmt.Sprintf("frequency must be a positive number of days, got %d", frequencyDays))
	}

	h := &Habit{
		Name:          norm.NFC.String(name),
		Description:   norm.NFC.String(description),
		Frequency:     frequencyDays,
		StartDateTime: FormatDay(now),
		Streak:        0,
		Logs:          []string{},
	}

	id := KeyPrefix + r.newID()
	data, err := json.Marshal(h)
	if err != nil {
		return "", fmt.Errorf("serialize habit: %w", err)
	}
	if err := r.store.Set(ctx, id, string(data)); err != nil {
		return "", fmt.Errorf("persist habit: %w", err)
	}

	r.logger.Debug("habit created",
		slog.String("id", id),
		slog.String("name", h.Name),
		slog.Int("frequency_days", frequencyDays))
	return id, nil
}

// Read returns the raw serialized record at id without deserializing, for
// exact-payload comparisons. ok is false when no record exists.
func (r *Repository) Read(ctx context.Context, id string) (string, bool, error) {
	return r.store.Get(ctx, id)
}

// GetByID loads and revives the habit at id. Reading a missing id is a
// NotFound error - distinct from "exists but fields missing", which revives
// to zero values. A record whose completion log contains an unparseable
// entry is an InvalidLogEntry error.
func (r *Repository) GetByID(ctx context.Context, id string) (*Habit, error) {
	raw, ok, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read habit %s: %w", id, err)
	}
	if !ok {
		return nil, NewNotFoundError(id)
	}
	return r.revive(id, raw)
}

// Put serializes and persists a habit at an existing id. Used by the
// completion-log mutations; not part of the public CRUD contract.
func (r *Repository) Put(ctx context.Context, id string, h *Habit) error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("serialize habit %s: %w", id, err)
	}
	if err := r.store.Set(ctx, id, string(data)); err != nil {
		return fmt.Errorf("persist habit %s: %w", id, err)
	}
	return nil
}

// Delete removes the record at id. Idempotent: deleting an absent id is
// not an error.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete habit %s: %w", id, err)
	}
	r.logger.Debug("habit deleted", slog.String("id", id))
	return nil
}

// ListAll enumerates every habit record in the store.
//
// Keys are filtered to the habit-id pattern and returned sorted
// lexicographically by id, so listings are deterministic regardless of
// backend iteration order. Records that fail to revive are skipped with a
// warning rather than aborting the whole enumeration; one corrupt record
// must not take down aggregate queries. The result is never nil.
func (r *Repository) ListAll(ctx context.Context) ([]Entry, error) {
	keys, err := r.store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list store keys: %w", err)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		if !IsHabitKey(key) {
			continue
		}
		raw, ok, err := r.store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("read habit %s: %w", key, err)
		}
		if !ok {
			// Deleted between Keys and Get. Losing the race is fine.
			continue
		}
		h, err := r.revive(key, raw)
		if err != nil {
			r.logger.Warn("skipping unrevivable habit record",
				slog.String("id", key),
				slog.Any("error", err))
			continue
		}
		entries = append(entries, Entry{ID: key, Habit: h})
	}
	return entries, nil
}

// Reset deletes every habit record, leaving unrelated keys in the shared
// namespace untouched. Returns the number of records removed.
func (r *Repository) Reset(ctx context.Context) (int, error) {
	keys, err := r.store.Keys(ctx)
	if err != nil {
		return 0, fmt.Errorf("list store keys: %w", err)
	}

	removed := 0
	for _, key := range keys {
		if !IsHabitKey(key) {
			continue
		}
		if err := r.store.Delete(ctx, key); err != nil {
			return removed, fmt.Errorf("delete habit %s: %w", key, err)
		}
		removed++
	}
	r.logger.Debug("habit store reset", slog.Int("removed", removed))
	return removed, nil
}

// revive deserializes a raw record, applying the lenient coercion policy
// and validating log entries.
func (r *Repository) revive(id, raw string) (*Habit, error) {
	var h Habit
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return nil, fmt.Errorf("revive habit %s: %w", id, err)
	}
	if err := h.validateLogs(id); err != nil {
		return nil, err
	}
	return &h, nil
}
