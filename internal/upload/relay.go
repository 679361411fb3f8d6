// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package upload

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

const (
	// FormField is the multipart field the image host reads the file from.
	FormField = "file"

	defaultContentType = "application/octet-stream"
	defaultFileName    = "upload"
	breakerName        = "upload-relay"

	// maxResponseBytes bounds how much of the host's answer is read.
	maxResponseBytes = 1 << 20
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// File is one file to forward.
type File struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Relay forwards uploads to the image host. It is safe for concurrent use.
type Relay struct {
	endpoint string
	token    string
	client   *http.Client
	cb       *gobreaker.CircuitBreaker[string]
}

// NewRelay creates a relay for the configured endpoint. A nil client is
// replaced by one using cfg.Timeout (zero means no timeout).
func NewRelay(cfg *config.UploadConfig, client *http.Client) *Relay {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return &Relay{
		endpoint: cfg.URL,
		token:    cfg.Token,
		client:   client,
		cb:       newBreaker(breakerName),
	}
}

// newBreaker opens after five or more requests in a one-minute window with at
// least 60% transport failures, and probes again after 30 seconds.
func newBreaker(name string) *gobreaker.CircuitBreaker[string] {
	return gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening upload circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},

		IsSuccessful: isReachable,
	})
}

// isReachable reports whether err still proves the host answered.
func isReachable(err error) bool {
	var upstream *UpstreamError
	switch {
	case err == nil,
		errors.As(err, &upstream),
		errors.Is(err, ErrNoImageURL),
		errors.Is(err, context.Canceled):
		return true
	}
	return false
}

// Upload forwards f and returns the absolute URL of the stored image.
func (r *Relay) Upload(ctx context.Context, f File) (string, error) {
	start := time.Now()
	imageURL, err := r.upload(ctx, f)
	metrics.RecordUpload(resultLabel(err), time.Since(start))

	if err == nil {
		logging.Ctx(ctx).Debug().Str("file_name", f.Name).Str("url", imageURL).Msg("Upload relayed")
	}
	return imageURL, err
}

func (r *Relay) upload(ctx context.Context, f File) (string, error) {
	if f.Body == nil {
		return "", ErrNoFile
	}

	body := bufio.NewReader(f.Body)
	if _, err := body.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrNoFile
		}
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	if r.endpoint == "" {
		return "", ErrNotConfigured
	}

	imageURL, err := r.cb.Execute(func() (string, error) {
		return r.send(ctx, f.Name, f.ContentType, body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
			return "", fmt.Errorf("upload service unavailable: %w", err)
		}
		if isReachable(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		}
		return "", err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	return imageURL, nil
}

// send streams the file to the host through a pipe and decodes the answer.
func (r *Relay) send(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	pr, pw := io.Pipe()
	defer pr.Close()

	mw := multipart.NewWriter(pw)
	go func() {
		err := writeFilePart(mw, name, contentType, body)
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, pr)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if auth := authorizationHeader(r.token); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes)) //nolint:errcheck
		return "", &UpstreamError{StatusCode: resp.StatusCode}
	}

	var payload struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if strings.TrimSpace(payload.Path) == "" {
		return "", ErrNoImageURL
	}

	return resolveImageURL(r.endpoint, payload.Path), nil
}

// writeFilePart writes body as the single file part of the form.
func writeFilePart(mw *multipart.Writer, name, contentType string, body io.Reader) error {
	if name == "" {
		name = defaultFileName
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		FormField, quoteEscaper.Replace(name)))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := io.Copy(part, body); err != nil {
		return fmt.Errorf("failed to stream file: %w", err)
	}
	return nil
}

// authorizationHeader renders the configured token as a bearer credential.
func authorizationHeader(token string) string {
	if strings.TrimSpace(token) == "" {
		return ""
	}
	if len(token) >= 7 && strings.EqualFold(token[:7], "Bearer ") {
		return token
	}
	return "Bearer " + token
}

// resolveImageURL anchors a host-relative path at the endpoint origin.
// Absolute URLs pass through, as does everything when the endpoint has no origin.
func resolveImageURL(endpoint, path string) string {
	if len(path) >= 4 && strings.EqualFold(path[:4], "http") {
		return path
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return path
	}

	origin := u.Scheme + "://" + u.Host
	if strings.HasPrefix(path, "/") {
		return origin + path
	}
	return origin + "/" + path
}

// resultLabel maps an Upload outcome onto the marquee_upload_relay_requests_total label.
func resultLabel(err error) string {
	var upstream *UpstreamError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNoFile):
		return "no_file"
	case errors.As(err, &upstream):
		return "upstream_error"
	case errors.Is(err, ErrNoImageURL):
		return "no_url"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "rejected"
	default:
		return "error"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
