package response

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/akave-ai/msgdecode/internal/decoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	resp := OK("a.json", 2, map[string]string{"id": "x"})

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":"x"},"status":"ok","path":"a.json","index":2}`, string(b))
}

func TestError(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		kind    string
		message string
	}{
		{
			name:    "MissingField",
			err:     &decoder.MissingFieldError{Field: "id", Index: -1},
			kind:    "missing_field",
			message: "required field id is missing",
		},
		{
			name:    "MalformedTimestamp",
			err:     &decoder.MalformedTimestampError{Value: "x"},
			kind:    "malformed_timestamp",
			message: "time is not an ISO-8601 timestamp with offset",
		},
		{
			name:    "SequenceElement",
			err:     &decoder.MalformedSequenceElementError{Field: "errors", Index: 0, Want: "string", Got: "number"},
			kind:    "malformed_sequence_element",
			message: "could not decode message",
		},
		{
			name:    "FieldType",
			err:     &decoder.FieldTypeError{Field: "level", Index: -1, Want: "string", Got: "number"},
			kind:    "field_type",
			message: "could not decode message",
		},
		{
			name:    "Document",
			err:     &decoder.MalformedDocumentError{Index: 0, Got: "string"},
			kind:    "malformed_document",
			message: "could not decode message",
		},
		{
			name:    "Other",
			err:     errors.New("scan json: boom"),
			kind:    "error",
			message: "could not decode message",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Error("in.json", 1, tc.err)
			assert.Equal(t, StatusError, got.Status)
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, tc.message, got.Message)
			assert.Equal(t, tc.err.Error(), got.Error)
			assert.Equal(t, "in.json", got.Path)
			assert.Equal(t, 1, got.Index)
		})
	}
}
