package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/distill"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ScrapeRequest is the body of POST /api/scraping.
type ScrapeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ScrapeResponse is returned by a successful scrape.
type ScrapeResponse struct {
	Result string `json:"result"`
}

// UnsupportedResponse is returned with 415 for uploads of unknown formats.
type UnsupportedResponse struct {
	Error    string `json:"error"`
	MimeType string `json:"mimetype"`
	Size     int    `json:"size"`
}

// ExtractionFailedResponse is returned with 500 when a file cannot be read.
type ExtractionFailedResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string             `json:"status"`
	Pool   *distill.PoolStats `json:"pool,omitempty"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, r, s.logger(), distill.Errorf(distill.EINVALID, "Invalid request body."))
		return
	}
	if err := validate.Struct(req); err != nil {
		Error(w, r, s.logger(), distill.Errorf(distill.EINVALIDURL, InvalidURLMessage))
		return
	}

	// Admitted scrapes run to completion even if the client goes away.
	ctx := context.WithoutCancel(r.Context())

	result, err := s.Scraper.Scrape(ctx, req.URL)
	if err != nil {
		Error(w, r, s.logger(), err)
		return
	}

	body, err := json.Marshal(ScrapeResponse{Result: result.Text})
	if err != nil {
		Error(w, r, s.logger(), err)
		return
	}
	body = append(body, '\n')

	etag := `"` + strconv.FormatUint(xxhash.Sum64(body), 16) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	limit := s.maxUploadSize()
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			Error(w, r, s.logger(), distill.Errorf(distill.EINVALID, "Upload exceeds %d bytes.", limit))
		case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
			Error(w, r, s.logger(), distill.Errorf(distill.ENOFILE, "No file uploaded."))
		default:
			Error(w, r, s.logger(), distill.Errorf(distill.EINVALID, "Invalid multipart body."))
		}
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	f, header, err := r.FormFile("file")
	if err != nil {
		Error(w, r, s.logger(), distill.Errorf(distill.ENOFILE, "No file uploaded."))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		Error(w, r, s.logger(), err)
		return
	}

	upload := &distill.UploadedFile{
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
	}

	result, err := s.Files.ExtractFile(r.Context(), upload)
	switch distill.ErrorCode(err) {
	case "":
		writeJSON(w, http.StatusOK, result)
	case distill.EUNSUPPORTED:
		writeJSON(w, http.StatusUnsupportedMediaType, UnsupportedResponse{
			Error:    distill.ErrorMessage(err),
			MimeType: upload.MimeType,
			Size:     upload.Size(),
		})
	case distill.EINTERNAL:
		s.logger().Error("file extraction failed",
			"filename", upload.Filename,
			"request_id", RequestID(r.Context()),
			"err", err,
		)
		writeJSON(w, http.StatusInternalServerError, ExtractionFailedResponse{
			Error:   "Failed to extract text from file.",
			Details: distill.ErrorMessage(err),
		})
	default:
		Error(w, r, s.logger(), err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	if s.Stats != nil {
		stats := s.Stats()
		resp.Pool = &stats
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, r, s.logger(), distill.Errorf(distill.ENOTFOUND, "Route %s %s not found.", r.Method, r.URL.Path))
}
