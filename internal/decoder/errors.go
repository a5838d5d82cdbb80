package decoder

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed decode errors.
var (
	ErrMissingField             = errors.New("missing field")
	ErrMalformedTimestamp       = errors.New("malformed timestamp")
	ErrMalformedSequenceElement = errors.New("malformed sequence element")
	ErrFieldType                = errors.New("wrong field type")
	ErrMalformedDocument        = errors.New("malformed document")
)

// topLevel is the Index used by errors raised outside the details sequence.
const topLevel = -1

func fieldPath(field string, index int) string {
	if index == topLevel {
		return field
	}
	return fmt.Sprintf("details[%d].%s", index, field)
}

// MissingFieldError reports a required key absent from an input object.
// Index is the position in details, or -1 for a top-level field.
type MissingFieldError struct {
	Field string
	Index int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", fieldPath(e.Field, e.Index))
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// MalformedTimestampError reports a time value that is not ISO-8601 with a zone offset.
type MalformedTimestampError struct {
	Value string
	Err   error
}

func (e *MalformedTimestampError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed timestamp %q", e.Value)
	}
	return fmt.Sprintf("malformed timestamp %q: %v", e.Value, e.Err)
}

func (e *MalformedTimestampError) Is(target error) bool { return target == ErrMalformedTimestamp }

func (e *MalformedTimestampError) Unwrap() error { return e.Err }

// MalformedSequenceElementError reports an errors/details element of the wrong shape.
type MalformedSequenceElementError struct {
	Field string
	Index int
	Want  string
	Got   string
}

func (e *MalformedSequenceElementError) Error() string {
	return fmt.Sprintf("%s[%d]: expected %s, got %s", e.Field, e.Index, e.Want, e.Got)
}

func (e *MalformedSequenceElementError) Is(target error) bool {
	return target == ErrMalformedSequenceElement
}

// FieldTypeError reports a present field whose value cannot be coerced to the schema type.
type FieldTypeError struct {
	Field string
	Index int
	Want  string
	Got   string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %s", fieldPath(e.Field, e.Index), e.Want, e.Got)
}

func (e *FieldTypeError) Is(target error) bool { return target == ErrFieldType }

// MalformedDocumentError reports a JSON document that is not an object.
type MalformedDocumentError struct {
	Index int
	Got   string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("document %d: expected object, got %s", e.Index, e.Got)
}

func (e *MalformedDocumentError) Is(target error) bool { return target == ErrMalformedDocument }
