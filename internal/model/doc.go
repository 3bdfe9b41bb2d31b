// Package model defines the core data structures used throughout crawlctl.
//
// This package contains the following main types:
//   - CheckStatus: The outcome classification of a single check
//   - CheckResult: The result of one setup or diagnostic check
//   - RunReport: The aggregate result of a setup or doctor run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (check, probe, report, database) need to use
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
