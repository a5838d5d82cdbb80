package response

import (
	"errors"
	"fmt"

	"github.com/akave-ai/msgdecode/internal/decoder"
)

// Status values carried in every envelope.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// APIResponse is the success envelope for one decoded document.
type APIResponse struct {
	Data   any    `json:"data"`
	Status string `json:"status"`
	Path   string `json:"path"`
	Index  int    `json:"index"`
}

// APIError is the failure envelope for one document.
type APIError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Kind    string `json:"kind"`
	Status  string `json:"status"`
	Path    string `json:"path"`
	Index   int    `json:"index"`
}

// OK wraps a decoded document read from path at position index.
func OK(path string, index int, data any) APIResponse {
	return APIResponse{
		Data:   data,
		Status: StatusOK,
		Path:   path,
		Index:  index,
	}
}

// Error wraps a decode failure. Index is -1 when the whole payload failed.
func Error(path string, index int, err error) APIError {
	return APIError{
		Message: message(err),
		Error:   err.Error(),
		Kind:    Kind(err),
		Status:  StatusError,
		Path:    path,
		Index:   index,
	}
}

// Kind names the decode error class of err, or "error" for anything else.
func Kind(err error) string {
	switch {
	case errors.Is(err, decoder.ErrMissingField):
		return "missing_field"
	case errors.Is(err, decoder.ErrMalformedTimestamp):
		return "malformed_timestamp"
	case errors.Is(err, decoder.ErrMalformedSequenceElement):
		return "malformed_sequence_element"
	case errors.Is(err, decoder.ErrFieldType):
		return "field_type"
	case errors.Is(err, decoder.ErrMalformedDocument):
		return "malformed_document"
	default:
		return "error"
	}
}

func message(err error) string {
	var missing *decoder.MissingFieldError
	if errors.As(err, &missing) {
		return fmt.Sprintf("required field %s is missing", missing.Field)
	}
	var ts *decoder.MalformedTimestampError
	if errors.As(err, &ts) {
		return "time is not an ISO-8601 timestamp with offset"
	}
	return "could not decode message"
}
