// Package config loads, normalizes, and validates the titlesync TOML
// configuration.
//
// Load resolves the file path (explicit flag, then the user config dir, then
// a project-local titlesync.toml), decodes it over Default(), expands paths,
// and validates the result. Components receive a *Config; nothing reads the
// file twice.
package config
