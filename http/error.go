package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/distill"
)

var codes = map[string]int{
	distill.EINVALID:     http.StatusBadRequest,
	distill.EINVALIDURL:  http.StatusBadRequest,
	distill.ENOFILE:      http.StatusBadRequest,
	distill.EUNSUPPORTED: http.StatusUnsupportedMediaType,
	distill.ENOTFOUND:    http.StatusNotFound,
	distill.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatus returns the HTTP status for an application error code.
func ErrorStatus(code string) int {
	if status, ok := codes[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the error envelope shared by all endpoints.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error writes err as an error envelope. Server errors are logged.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := distill.ErrorCode(err)
	status := ErrorStatus(code)

	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestID(r.Context()),
			"err", err,
		)
	}

	resp := ErrorResponse{
		Status:  "error",
		Message: distill.ErrorMessage(err),
		Code:    code,
	}
	if status < http.StatusInternalServerError {
		resp.Status = "fail"
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
