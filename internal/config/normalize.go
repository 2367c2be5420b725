package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeBridge(); err != nil {
		return err
	}
	c.normalizeMarkers()
	c.normalizeLogging()
	return c.normalizeJournal()
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeBridge() error {
	c.Bridge.Socket = strings.TrimSpace(c.Bridge.Socket)
	if c.Bridge.Socket == "" {
		c.Bridge.Socket = defaultBridgeSocket
	}
	var err error
	if c.Bridge.Socket, err = expandPath(c.Bridge.Socket); err != nil {
		return fmt.Errorf("bridge.socket: %w", err)
	}
	if c.Bridge.DialTimeoutSeconds <= 0 {
		c.Bridge.DialTimeoutSeconds = defaultBridgeDialTimeout
	}
	return nil
}

func (c *Config) normalizeMarkers() {
	c.Markers.Prefix = strings.TrimSpace(c.Markers.Prefix)
	if c.Markers.Prefix == "" {
		c.Markers.Prefix = defaultMarkerPrefix
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeJournal() error {
	c.Journal.Path = strings.TrimSpace(c.Journal.Path)
	if c.Journal.Path == "" {
		c.Journal.Path = filepath.Join(c.Paths.LogDir, "history.db")
		return nil
	}
	var err error
	if c.Journal.Path, err = expandPath(c.Journal.Path); err != nil {
		return fmt.Errorf("journal.path: %w", err)
	}
	return nil
}
