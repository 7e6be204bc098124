// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/disintegration/imaging"

	"github.com/businesstalk/backend/middleware"
	"github.com/businesstalk/backend/models"
)

// Upload size and output bounds. Thumbnails are stored inline in the
// podcast document, so the compression step keeps them well under the
// document size guard.
const (
	maxUploadBytes = 15 << 20
	maxImageWidth  = 1600
	jpegQuality    = 80
)

// Upload handles POST /podcasts/upload (admin). Accepts a multipart image,
// resizes and re-encodes it, and returns an inline data-URI reference the
// admin form stores as thumbnailImage.
func (h *PodcastHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "image upload too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unsupported image format")
		return
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		slog.Error("failed to encode uploaded image", "error", err, "filename", header.Filename)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "failed to process image")
		return
	}

	slog.Info("image uploaded", "filename", header.Filename, "bytes", buf.Len())
	middleware.JSONResponse(w, http.StatusOK, models.UploadResponse{
		Image: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}
