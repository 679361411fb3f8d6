// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/upload"
)

var errNoFilePart = errors.New("no file part in form")

// UploadImage handles POST /api/upload.
//
// The multipart body is streamed: the file part is handed to the relay as it
// is read, never buffered to memory or disk.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	reader, err := r.MultipartReader()
	if err != nil {
		respondError(w, http.StatusBadRequest, msgNoFile)
		return
	}

	part, err := nextFilePart(reader)
	if errors.Is(err, errNoFilePart) {
		respondError(w, http.StatusBadRequest, msgNoFile)
		return
	}
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Malformed multipart body")
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	defer part.Close()

	imageURL, err := h.uploader.Upload(r.Context(), upload.File{
		Name:        part.FileName(),
		ContentType: part.Header.Get("Content-Type"),
		Body:        part,
	})

	var upstream *upload.UpstreamError
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, models.URLResponse{URL: imageURL})
	case errors.Is(err, upload.ErrNoFile):
		respondError(w, http.StatusBadRequest, msgNoFile)
	case errors.As(err, &upstream):
		logging.Ctx(r.Context()).Warn().
			Int("upstream_status", upstream.StatusCode).
			Str("file_name", sanitizeLogValue(part.FileName())).
			Msg("Image host rejected upload")
		respondError(w, upstream.StatusCode, msgUploadFailed)
	case errors.Is(err, upload.ErrNoImageURL):
		logging.Ctx(r.Context()).Error().Err(err).Str("operation", "upload_image").Msg("Request failed")
		respondError(w, http.StatusInternalServerError, msgNoImageURL)
	default:
		respondServerError(w, r, "upload_image", "", err)
	}
}

// nextFilePart returns the part named "file", or the first part carrying a
// filename, whichever comes first in the body.
func nextFilePart(reader *multipart.Reader) (*multipart.Part, error) {
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, errNoFilePart
		}
		if err != nil {
			return nil, err
		}

		if part.FormName() == upload.FormField || part.FileName() != "" {
			return part, nil
		}
		part.Close()
	}
}
