// Package runner executes the external programs the setup checklist drives:
// the interpreter version query, the dependency installation, and the crawler
// test suite. It distinguishes "the program ran and exited non-zero" from
// "the program could not be started", because the setup exit-code contract
// depends on that distinction.
package runner
