// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package testinfra

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

// UploadCapture represents one upload received by MockImageHost.
type UploadCapture struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string

	// Multipart contents. FieldName is empty when the body was not multipart.
	FieldName       string
	FileName        string
	FileContentType string
	Body            []byte
}

// HasAuthorization reports whether the request carried an Authorization header.
func (c UploadCapture) HasAuthorization() bool {
	return c.Authorization != ""
}

// MockImageHost is an httptest server standing in for the external image host.
// It records every upload and answers with ResponseStatus/ResponseBody, or
// delegates to ResponseFunc when set.
type MockImageHost struct {
	Server *httptest.Server

	// ResponseStatus is the HTTP status code to return (default: 200).
	ResponseStatus int

	// ResponseBody is the response body to return.
	ResponseBody []byte

	// ResponseFunc allows custom response handling per request.
	ResponseFunc func(w http.ResponseWriter, r *http.Request)

	mu       sync.Mutex
	captures []UploadCapture
}

// NewMockImageHost starts a mock image host; it is closed by t.Cleanup.
func NewMockImageHost(t *testing.T) *MockImageHost {
	t.Helper()

	h := &MockImageHost{ResponseStatus: http.StatusOK}
	h.Server = httptest.NewServer(http.HandlerFunc(h.serve))
	t.Cleanup(h.Server.Close)

	return h
}

func (h *MockImageHost) serve(w http.ResponseWriter, r *http.Request) {
	capture := UploadCapture{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
	}
	readUpload(r, &capture)

	h.mu.Lock()
	h.captures = append(h.captures, capture)
	h.mu.Unlock()

	if h.ResponseFunc != nil {
		h.ResponseFunc(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(h.ResponseStatus)
	if h.ResponseBody != nil {
		w.Write(h.ResponseBody) //nolint:errcheck
	}
}

// readUpload copies the first file part of a multipart body into capture.
func readUpload(r *http.Request, capture *UploadCapture) {
	mediaType, params, err := mime.ParseMediaType(capture.ContentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		capture.Body, _ = io.ReadAll(r.Body)
		return
	}

	reader := multipart.NewReader(r.Body, params["boundary"])
	for {
		part, err := reader.NextPart()
		if err != nil {
			return
		}
		if part.FileName() == "" {
			continue
		}
		capture.FieldName = part.FormName()
		capture.FileName = part.FileName()
		capture.FileContentType = part.Header.Get("Content-Type")
		capture.Body, _ = io.ReadAll(part)
		return
	}
}

// URL returns the server base URL.
func (h *MockImageHost) URL() string {
	return h.Server.URL
}

// UploadURL returns the upload endpoint on the mock host.
func (h *MockImageHost) UploadURL() string {
	return h.Server.URL + "/api/upload"
}

// Captures returns all recorded uploads.
func (h *MockImageHost) Captures() []UploadCapture {
	h.mu.Lock()
	defer h.mu.Unlock()
	result := make([]UploadCapture, len(h.captures))
	copy(result, h.captures)
	return result
}

// RespondWithPath configures a 200 response carrying {"path": path}.
func (h *MockImageHost) RespondWithPath(path string) {
	h.ResponseStatus = http.StatusOK
	h.ResponseBody = PathResponse(path)
}

// PathResponse builds the JSON body the image host returns on success.
func PathResponse(path string) []byte {
	data, _ := json.Marshal(map[string]string{"path": path})
	return data
}
