// Package main provides the entry point for the crawlctl CLI.
//
// crawlctl prepares a machine for running the NotHere.one crawler stack and
// verifies its runtime prerequisites: the Python interpreter, the dependency
// manifest, the DATABASE_URL and REDIS_URL environment contract, and the
// crawler's own test suite.
//
// Usage:
//
//	crawlctl setup
//	crawlctl doctor
//	crawlctl schema apply
//
// See --help for all available options.
package main

// main is the entry point for crawlctl.
func main() {
	Execute()
}
