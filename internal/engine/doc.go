// Package engine implements the habit scheduling logic: recurrence
// decisions, the completion log, streak computation, and the aggregate
// queries the calendar views consume.
//
// # Determinism
//
// Nothing in this package reads the wall clock directly. Pure decisions
// (IsDueOn, IsCompleteOn, CalculateStreak) take the reference date as a
// parameter; stateful operations on the Tracker take their "now" from an
// injected Clock. Tests substitute a fixed clock and get byte-identical
// results on every run.
//
// # Failure policy
//
// Bulk read paths return safe defaults instead of failing: a habit whose
// start date does not parse is simply never due, because one malformed
// historical record must not crash a whole-calendar query. Streak
// computation is the deliberate exception - an unparseable log entry there
// surfaces as a MalformedLog error so data corruption is not masked by a
// plausible-looking number.
package engine
