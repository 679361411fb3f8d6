// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

//go:build integration

package testinfra

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

const dockerProbeTimeout = 5 * time.Second

// IsDockerAvailable reports whether testcontainers can reach a Docker daemon.
func IsDockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), dockerProbeTimeout)
	defer cancel()

	provider, err := testcontainers.NewDockerProvider()
	if err != nil {
		return false
	}
	defer provider.Close() //nolint:errcheck

	return provider.Health(ctx) == nil
}

// SkipIfNoDocker skips t when no Docker daemon is reachable.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()
	if !IsDockerAvailable() {
		t.Skip("Skipping test: Docker not available")
	}
}

// CleanupContainer terminates container and logs, rather than fails, on error.
// A nil container is ignored.
func CleanupContainer(t *testing.T, container testcontainers.Container) {
	t.Helper()
	if err := testcontainers.TerminateContainer(container); err != nil {
		t.Logf("Warning: failed to terminate container: %v", err)
	}
}
