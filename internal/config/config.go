// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(ctx, &cfg.Database)
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Upload   UploadConfig   `koanf:"upload"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// StaticDir, when set, is served as the single-page client for any
	// GET path the API does not own.
	StaticDir string `koanf:"static_dir"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds MongoDB settings.
//
// Environment Variables:
//   - MONGODB_URI (alias DATABASE_CONNECTION_STRING): connection string
//   - MONGODB_DATABASE (alias DATABASE_NAME): database name (default: marquee)
//   - MOVIES_COLLECTION: movie collection (default: movies)
//   - USERS_COLLECTION: user collection (default: users)
//   - MONGODB_CONNECT_TIMEOUT: connect and ping bound (default: 10s)
type DatabaseConfig struct {
	URI              string        `koanf:"uri"`
	Name             string        `koanf:"name"`
	MoviesCollection string        `koanf:"movies_collection"`
	UsersCollection  string        `koanf:"users_collection"` // reserved, not read by the service
	ConnectTimeout   time.Duration `koanf:"connect_timeout"`
}

// UploadConfig holds settings for the external image host.
type UploadConfig struct {
	// URL is the endpoint file uploads are forwarded to.
	URL string `koanf:"url"`

	// Token is sent as a bearer credential. A value already carrying the
	// "Bearer " prefix is sent unchanged.
	Token string `koanf:"token"`

	// Timeout bounds each outbound upload. Zero means no timeout.
	Timeout time.Duration `koanf:"timeout"`
}

// SecurityConfig holds browser-facing settings.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration using koanf's layered sources and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
