// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateUpload(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateDatabase validates MongoDB configuration
func (c *Config) validateDatabase() error {
	if err := validateMongoURI(c.Database.URI); err != nil {
		return err
	}
	if strings.TrimSpace(c.Database.Name) == "" {
		return fmt.Errorf("MONGODB_DATABASE is required")
	}
	if strings.TrimSpace(c.Database.MoviesCollection) == "" {
		return fmt.Errorf("MOVIES_COLLECTION is required")
	}
	if strings.TrimSpace(c.Database.UsersCollection) == "" {
		return fmt.Errorf("USERS_COLLECTION is required")
	}
	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("MONGODB_CONNECT_TIMEOUT must be positive")
	}
	return nil
}

// validateUpload validates the upload relay configuration.
// An empty URL is allowed; uploads then fail at request time.
func (c *Config) validateUpload() error {
	if c.Upload.URL != "" {
		if err := validateHTTPURL(c.Upload.URL, "UPLOAD_URL"); err != nil {
			return err
		}
	}
	if c.Upload.Timeout < 0 {
		return fmt.Errorf("UPLOAD_TIMEOUT must not be negative")
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	return c.validateLogFormat()
}

// validateLogLevel validates the log level configuration
func (c *Config) validateLogLevel() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	return nil
}

// validateLogFormat validates the log format configuration
func (c *Config) validateLogFormat() error {
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
