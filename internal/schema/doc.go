// Package schema applies the operator-provided DDL file to the Postgres
// backend. crawlctl ships no schema of its own; this package only automates
// the "psql -f schema.sql" instruction the setup checklist prints.
package schema
