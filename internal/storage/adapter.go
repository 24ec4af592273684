// Package storage defines the key/value adapter contract the habit
// repository is written against, plus an in-memory implementation.
//
// The adapter is the sole out-of-process dependency of the data layer. Any
// conforming backend may be substituted: the in-memory map here, the SQLite,
// Badger, and Redis backends in the sibling packages, or anything else that
// honors the contract. No transactional guarantees are assumed; callers
// tolerate Get reporting a missing key, and read-modify-write sequences are
// last-writer-wins.
package storage

import "context"

// Adapter is the capability set the repository consumes.
//
// Get reports ok=false for an absent key; absence is not an error. Keys
// returns every key in the namespace, including keys written by unrelated
// tooling - callers filter to the records they own.
type Adapter interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
