// Package log provides structured logging helpers for crawlctl.
//
// The tool handles connection strings (DATABASE_URL, REDIS_URL) that commonly
// embed passwords. The handler in this package masks such values before they
// reach the underlying slog handler, so verbose runs can be shared safely.
package log
