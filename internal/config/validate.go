package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMarkers(); err != nil {
		return err
	}
	if err := c.validateBridge(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMarkers() error {
	if c.Markers.Prefix == "" {
		return errors.New("markers.prefix must not be empty")
	}
	if strings.Contains(c.Markers.Prefix, "-") {
		return errors.New("markers.prefix must not contain '-'; the first hyphen separates track from template")
	}
	return nil
}

func (c *Config) validateBridge() error {
	if c.Bridge.Socket == "" {
		return errors.New("bridge.socket must be set")
	}
	if c.Bridge.DialTimeoutSeconds <= 0 {
		return errors.New("bridge.dial_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
