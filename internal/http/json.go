package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"

	apperrors "github.com/target/academic-suite/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, map[string]string{"error": p.ErrCode, "message": p.Err.Error()})
}

// WriteAppError maps an application error to its HTTP status.
// Unclassified errors answer 500 without leaking their text.
func WriteAppError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsValidation(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: string(apperrors.ErrCodeValidation), Err: err})
	case apperrors.IsNotFound(err):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: string(apperrors.ErrCodeNotFound), Err: err})
	case apperrors.IsCanceled(err), apperrors.IsTimeout(err):
		WriteError(w, ErrorParams{Code: http.StatusRequestTimeout, ErrCode: string(apperrors.GetCode(err)), Err: err})
	case apperrors.IsUnavailable(err):
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": string(apperrors.ErrCodeUnavailable), "message": "service temporarily unavailable",
		})
	default:
		WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"error": string(apperrors.ErrCodeInternal), "message": "internal error",
		})
	}
}
