package server

import (
	"encoding/json"
	"errors"
	"net/http"

	sugerrors "github.com/matzehuels/sugiyama/pkg/errors"
)

// errorResponse is the JSON body written for any handler error.
type errorResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

// codeStatus maps a structured error code to its HTTP status. Codes with
// no explicit entry fall back to 500, matching the "unexpected internal
// error" default in pkg/errors' own naming convention.
var codeStatus = map[sugerrors.Code]int{
	sugerrors.ErrCodeInvalidInput:  http.StatusBadRequest,
	sugerrors.ErrCodeEmptyGraph:    http.StatusBadRequest,
	sugerrors.ErrCodeInvalidFormat: http.StatusBadRequest,
	sugerrors.ErrCodeInvalidPath:   http.StatusBadRequest,
	sugerrors.ErrCodeNotFound:      http.StatusNotFound,
	sugerrors.ErrCodeFileNotFound:  http.StatusNotFound,
	sugerrors.ErrCodeTimeout:       http.StatusGatewayTimeout,
	sugerrors.ErrCodeRateLimited:   http.StatusTooManyRequests,
	sugerrors.ErrCodeUnsupported:   http.StatusUnprocessableEntity,
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := sugerrors.GetCode(err)
	status, ok := codeStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	fields := []any{"id", requestIDFromContext(r.Context()), "code", code, "status", status}
	var structured *sugerrors.Error
	if errors.As(err, &structured) && structured.Cause != nil {
		fields = append(fields, "cause", structured.Cause)
	}
	if status >= http.StatusInternalServerError {
		s.Logger.Error(sugerrors.UserMessage(err), fields...)
	} else {
		s.Logger.Warn(sugerrors.UserMessage(err), fields...)
	}

	writeJSON(w, status, errorResponse{
		RequestID: requestIDFromContext(r.Context()),
		Code:      string(code),
		Message:   sugerrors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
