// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package upload forwards image uploads to the external image host.

A Relay streams one file as a multipart/form-data POST (field "file") to the
configured endpoint, attaches the bearer credential, and turns the host's
{"path": "..."} answer into an absolute URL anchored at the endpoint origin.

# Error Kinds

	ErrNoFile        empty or missing payload, nothing is sent
	ErrNoImageURL    the host accepted the file but returned no path
	*UpstreamError   the host answered with a non-2xx status
	ErrNotConfigured no upload URL is configured

Any other error is a transport or decoding failure.

# Circuit Breaker

Calls run through a sony/gobreaker circuit breaker named "upload-relay".
Only transport failures count against it; a host that answers, even with an
error status, is considered reachable. There are no retries.
*/
package upload
