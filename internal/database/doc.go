// Package database provides SQLite-based storage for setup and doctor run
// reports. Persistence is opt-in: a plain setup run writes nothing, keeping
// repeated runs idempotent. When enabled, reports are stored as JSON rows so
// the history command can replay any past run in any output format.
package database
