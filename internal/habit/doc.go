// Package habit defines the persisted habit record and the repository that
// owns its identifier scheme, serialization, and raw CRUD operations over a
// storage adapter.
//
// # Record format
//
// Each habit is stored as a JSON object under a key of the form
// "id" + UUID. The key prefix and UUID shape let enumeration distinguish
// habit records from unrelated keys sharing the same store (the original
// data lived in browser local storage next to theme preferences and other
// page state).
//
//	{
//	  "habitName": "Drink Water",
//	  "habitDescription": "Fill glass, lift to mouth and swallow",
//	  "habitFrequency": 1,
//	  "startDateTime": "Mon Jun 02 2025",
//	  "habitStreak": 0,
//	  "logs": ["Tue Jun 03 2025"]
//	}
//
// # Revival policy
//
// Historical records were written by several generations of tooling, so
// deserialization is deliberately forgiving:
//
//   - habitFrequency and habitStreak accept a JSON number or a numeric
//     string. A value that fails numeric coercion is carried through
//     verbatim on re-serialization rather than being replaced with a zero
//     or rejected outright.
//   - startDateTime is parsed against several accepted layouts and
//     reformatted to the canonical day layout. An unparseable value is
//     kept as-is; scheduling treats such habits as never due.
//   - logs entries must parse as dates. An unparseable entry is a hard
//     error (InvalidLogEntry) because silently dropping completion history
//     would corrupt streak math.
//
// All calendar arithmetic happens at day granularity in UTC.
package habit
