// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources into a single validated [StructuredConfig].
package config
