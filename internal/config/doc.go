// Package config provides configuration structures and utilities for crawlctl.
// It defines defaults for the external collaborators the tool drives (the
// Python interpreter, the dependency manifest, the schema and test files),
// the environment variable contract of the crawler stack, and the optional
// .crawlctl configuration file.
package config
