// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// TestRecordDBQuery tests MongoDB operation metric recording
func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name       string
		operation  string
		collection string
		duration   time.Duration
		err        error
	}{
		{"successful find", "find", "movies", 10 * time.Millisecond, nil},
		{"successful insert", "insert", "movies", 5 * time.Millisecond, nil},
		{"failed replace", "replace", "movies", 100 * time.Millisecond, errors.New("connection refused")},
		{"slow count", "count", "movies", 5500 * time.Millisecond, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.collection, "connection refused"))
			RecordDBQuery(tt.operation, tt.collection, tt.duration, tt.err)
			after := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.collection, "connection refused"))

			want := 0.0
			if tt.err != nil {
				want = 1
			}
			if after-before != want {
				t.Errorf("error counter delta = %v, want %v", after-before, want)
			}
		})
	}
}

func TestErrorType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{context.DeadlineExceeded, "timeout"},
		{fmt.Errorf("find movies: %w", context.DeadlineExceeded), "timeout"},
		{context.Canceled, "canceled"},
		{errors.New("short"), "short"},
		{errors.New(strings.Repeat("x", 80)), strings.Repeat("x", 50)},
	}

	for _, tt := range tests {
		if got := errorType(tt.err); got != tt.want {
			t.Errorf("errorType(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/movies/{id}", "404")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/movies/{id}", "404", 3*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("http_requests_total delta = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("active requests delta = %v, want 2", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordUpload(t *testing.T) {
	counter := UploadRelayRequests.WithLabelValues("upstream_error")
	before := testutil.ToFloat64(counter)

	RecordUpload("upstream_error", 120*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("upload_relay_requests_total delta = %v, want 1", got)
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("test")
	if got := testutil.CollectAndCount(AppInfo); got < 1 {
		t.Errorf("build_info series = %d, want at least 1", got)
	}
}

func uploadHistogram(t *testing.T) *dto.Histogram {
	t.Helper()
	var m dto.Metric
	if err := UploadRelayDuration.Write(&m); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return m.GetHistogram()
}

func TestRecordUpload_Histogram(t *testing.T) {
	before := uploadHistogram(t)

	RecordUpload("success", 300*time.Millisecond)

	after := uploadHistogram(t)
	if got := after.GetSampleCount() - before.GetSampleCount(); got != 1 {
		t.Errorf("sample count delta = %d, want 1", got)
	}
	if got := after.GetSampleSum() - before.GetSampleSum(); got < 0.29 || got > 0.31 {
		t.Errorf("sample sum delta = %v, want ~0.3", got)
	}

	// 0.3s lands in the 0.5 bucket but not the 0.25 bucket.
	for i, b := range after.GetBucket() {
		delta := b.GetCumulativeCount() - before.GetBucket()[i].GetCumulativeCount()
		switch b.GetUpperBound() {
		case 0.25:
			if delta != 0 {
				t.Errorf("bucket 0.25 delta = %d, want 0", delta)
			}
		case 0.5:
			if delta != 1 {
				t.Errorf("bucket 0.5 delta = %d, want 1", delta)
			}
		}
	}
}
