package habit

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Habit is a recurring task definition with a completion history.
//
// Frequency and Streak are 0 and Logs is empty on a freshly created habit.
// Streak is a cached value: it is always recomputable from Logs and
// Frequency, and is rewritten on every completion-log mutation.
type Habit struct {
	// Name is the non-empty display string.
	Name string

	// Description may be empty.
	Description string

	// Frequency is the interval in days between scheduled occurrences
	// (1 = daily, 7 = weekly). Zero means the persisted value failed
	// numeric coercion; such habits are never due.
	Frequency int

	// StartDateTime is the persisted first-occurrence date string. Kept as
	// a string because malformed historical values must survive round-trips
	// unchanged; use StartTime to interpret it.
	StartDateTime string

	// Streak is the cached consecutive-completion count.
	Streak int

	// Logs holds one completion date string per recorded completion, in
	// append order. Duplicate same-day entries are tolerated; completion
	// checks dedupe by calendar day.
	Logs []string

	// Raw tokens preserved when numeric coercion failed, so that
	// re-serialization emits the original value instead of a fabricated
	// zero. Nil when the parsed field is authoritative.
	rawFrequency json.RawMessage
	rawStreak    json.RawMessage
}

// record mirrors the persisted JSON shape with lenient field types.
type record struct {
	Name        string          `json:"habitName"`
	Description string          `json:"habitDescription"`
	Frequency   json.RawMessage `json:"habitFrequency"`
	Start       string          `json:"startDateTime"`
	Streak      json.RawMessage `json:"habitStreak"`
	Logs        []string        `json:"logs"`
}

// UnmarshalJSON revives a persisted record.
//
// Numeric fields accept a JSON number or a numeric string; on failed
// coercion the parsed value is 0 and the original token is retained for
// re-serialization. The start date is reformatted to the canonical day
// layout when parseable and kept verbatim otherwise. Log entries are NOT
// validated here; the repository validates them where a habit id is
// available for error reporting.
func (h *Habit) UnmarshalJSON(data []byte) error {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	*h = Habit{
		Name:          rec.Name,
		Description:   rec.Description,
		StartDateTime: reviveDate(rec.Start),
		Logs:          rec.Logs,
	}
	h.Frequency, h.rawFrequency = coerceInt(rec.Frequency)
	h.Streak, h.rawStreak = coerceInt(rec.Streak)
	if h.Logs == nil {
		h.Logs = []string{}
	}
	return nil
}

// MarshalJSON serializes the habit in the persisted record format.
func (h Habit) MarshalJSON() ([]byte, error) {
	freq := h.rawFrequency
	if freq == nil {
		freq = json.RawMessage(strconv.Itoa(h.Frequency))
	}
	streak := h.rawStreak
	if streak == nil {
		streak = json.RawMessage(strconv.Itoa(h.Streak))
	}
	logs := h.Logs
	if logs == nil {
		logs = []string{}
	}
	return json.Marshal(record{
		Name:        h.Name,
		Description: h.Description,
		Frequency:   freq,
		Start:       h.StartDateTime,
		Streak:      streak,
		Logs:        logs,
	})
}

// StartTime parses the habit's start date. Returns false when the persisted
// value is missing or unparseable; callers treat such habits as never due.
func (h *Habit) StartTime() (time.Time, bool) {
	if h.StartDateTime == "" {
		return time.Time{}, false
	}
	return ParseDate(h.StartDateTime)
}

// LogDays converts the completion log to sorted, deduplicated UTC day
// indices. An unparseable entry returns a MalformedLog error; garbage
// timestamps must not be silently treated as valid during streak math.
func (h *Habit) LogDays() (map[int64]bool, error) {
	days := make(map[int64]bool, len(h.Logs))
	for _, entry := range h.Logs {
		t, ok := ParseDate(entry)
		if !ok {
			return nil, NewMalformedLogError(entry)
		}
		days[DayIndex(t)] = true
	}
	return days, nil
}

// validateLogs checks every log entry parses as a date, reporting the habit
// id in the error. Called during repository revival.
func (h *Habit) validateLogs(id string) error {
	for _, entry := range h.Logs {
		if _, ok := ParseDate(entry); !ok {
			return NewInvalidLogEntryError(id, entry)
		}
	}
	return nil
}

// reviveDate normalizes a parseable date string to the canonical day layout
// and passes anything else through unchanged.
func reviveDate(s string) string {
	if s == "" {
		return s
	}
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return FormatDay(t)
}

// coerceInt parses a JSON token as an integer, accepting numbers and
// numeric strings. On failure it returns 0 and the original token.
func coerceInt(raw json.RawMessage) (int, json.RawMessage) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, nil
	}

	// Plain JSON number.
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	// Integral float written by older tooling, e.g. 7.0.
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil && f == float64(int(f)) {
		return int(f), nil
	}

	// Numeric string, e.g. "7".
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
	}

	return 0, append(json.RawMessage(nil), raw...)
}
