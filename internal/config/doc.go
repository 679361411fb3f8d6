// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config provides centralized configuration management for Marquee.

Configuration is layered with koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The first existing file among
CONFIG_PATH, config.yaml, config.yml and /etc/marquee/config.yaml is used.

# Environment Variables

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 6124)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown bound (default: 10s)
  - STATIC_DIR: Directory holding the built browser client (optional)

MongoDB (DatabaseConfig):
  - MONGODB_URI or DATABASE_CONNECTION_STRING (default: mongodb://localhost:27017)
  - MONGODB_DATABASE or DATABASE_NAME (default: marquee)
  - MOVIES_COLLECTION (default: movies)
  - USERS_COLLECTION (default: users)
  - MONGODB_CONNECT_TIMEOUT (default: 10s)

Upload relay (UploadConfig):
  - UPLOAD_URL or EXTERNAL_UPLOAD_URL: image host endpoint
  - UPLOAD_TOKEN or EXTERNAL_UPLOAD_TOKEN: bearer credential
  - UPLOAD_TIMEOUT: outbound timeout, 0 for none (default: 0)

Security and logging:
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

When both a primary and a legacy name are set, the primary name wins.

# Example config.yaml

	server:
	  port: 6124
	database:
	  uri: mongodb://mongo:27017
	  name: marquee
	upload:
	  url: https://images.example.com/api/upload
	  token: secret
*/
package config
