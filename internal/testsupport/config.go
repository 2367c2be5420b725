// Package testsupport provides shared fixtures: a test config builder and an
// in-memory Timeline Host fake used by engine, bridge, and CLI tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"titlesync/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Bridge.Socket = filepath.Join(base, "bridge.sock")
	cfg.Journal.Path = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithPrefix overrides the marker prefix on the test config.
func WithPrefix(prefix string) ConfigOption {
	return func(c *config.Config) {
		c.Markers.Prefix = prefix
	}
}

// WithJournalDisabled turns off the run journal.
func WithJournalDisabled() ConfigOption {
	return func(c *config.Config) {
		c.Journal.Enabled = false
	}
}
