// Package check implements the individual preflight checks of the setup
// checklist: interpreter availability, environment variable presence, and
// collaborator file existence.
//
// Design decision: Each check is implemented as a separate type behind the
// Checker interface rather than as a single function with a switch because:
//  1. Commands compose different check sequences (setup vs doctor)
//  2. Easier testing - each check can be tested in isolation
//  3. Checks carry their own configuration (variable name, documented default)
package check
