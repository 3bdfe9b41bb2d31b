// Package probe implements live connectivity checks against the crawler
// stack's backends: a Redis PING and a Postgres ping. Probes go one step
// beyond the presence checks in package check: they connect with the same
// client libraries and URL parsing the stack uses, so a passing probe means
// the configured URL actually works.
package probe
