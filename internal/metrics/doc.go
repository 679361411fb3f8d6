// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:6124/metrics

# Available Metrics

All names carry the marquee_ prefix.

HTTP:
  - marquee_http_requests_total (method, endpoint, status_code)
  - marquee_http_request_duration_seconds (method, endpoint)
  - marquee_http_requests_in_flight

MongoDB:
  - marquee_mongodb_operation_duration_seconds (operation, collection)
  - marquee_mongodb_operation_errors_total (operation, collection, error_type)

Upload relay:
  - marquee_upload_relay_requests_total (result)
  - marquee_upload_relay_duration_seconds
  - marquee_breaker_state, marquee_breaker_requests_total,
    marquee_breaker_transitions_total (name)

Process:
  - marquee_build_info (version, go_version)

The endpoint label is the chi route pattern (for example /api/movies/{id}),
never the raw path, so label cardinality stays fixed.
*/
package metrics
