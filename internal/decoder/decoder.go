// Package decoder turns loosely typed message objects into model.Message values.
//
// Input objects are the generic form produced by a JSON decoder: string keys
// mapping to strings, numbers, bools, nil, []any and map[string]any. Decoding
// is a single pass with no shared state, so the functions here are safe for
// concurrent use as long as callers do not mutate an object mid-call.
package decoder

import (
	"github.com/akave-ai/msgdecode/internal/model"
)

// Message field keys.
const (
	FieldTime     = "time"
	FieldLevel    = "level"
	FieldID       = "id"
	FieldText     = "text"
	FieldDuration = "duration"
	FieldLocation = "location"
	FieldStatus   = "status"
	FieldErrors   = "errors"
	FieldDetails  = "details"
)

// Detail field keys.
const (
	FieldKey      = "key"
	FieldPosition = "position"
	FieldType     = "type"
	FieldValue    = "value"
	FieldValueRaw = "valueRaw"
)

// Decode converts one message object into a Message. On error no Message is
// returned.
func Decode(obj map[string]any) (*model.Message, error) {
	raw, ok := lookup(obj, FieldTime)
	if !ok {
		return nil, &MissingFieldError{Field: FieldTime, Index: topLevel}
	}
	ts, ok := raw.(string)
	if !ok {
		return nil, &MalformedTimestampError{Value: formatScalar(raw)}
	}
	parsed, err := ParseTimestamp(ts)
	if err != nil {
		return nil, err
	}

	msg := &model.Message{Time: parsed}

	if msg.Level, err = requireString(obj, FieldLevel, topLevel); err != nil {
		return nil, err
	}
	if msg.ID, err = requireString(obj, FieldID, topLevel); err != nil {
		return nil, err
	}
	if msg.Text, err = requireString(obj, FieldText, topLevel); err != nil {
		return nil, err
	}
	if msg.Duration, err = requireInt(obj, FieldDuration, topLevel); err != nil {
		return nil, err
	}
	if msg.Location, err = requireString(obj, FieldLocation, topLevel); err != nil {
		return nil, err
	}
	if msg.Status, err = optionalString(obj, FieldStatus, topLevel); err != nil {
		return nil, err
	}
	if msg.Errors, err = decodeErrors(obj); err != nil {
		return nil, err
	}
	if msg.Details, err = decodeDetails(obj); err != nil {
		return nil, err
	}
	return msg, nil
}

func decodeErrors(obj map[string]any) ([]string, error) {
	raw, ok := lookup(obj, FieldErrors)
	if !ok {
		return []string{}, nil
	}
	switch list := raw.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, nil
	case []any:
		out := make([]string, 0, len(list))
		for i, e := range list {
			s, ok := e.(string)
			if !ok {
				return nil, &MalformedSequenceElementError{Field: FieldErrors, Index: i, Want: "string", Got: jsonType(e)}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &FieldTypeError{Field: FieldErrors, Index: topLevel, Want: "array", Got: jsonType(raw)}
	}
}

func decodeDetails(obj map[string]any) ([]model.Detail, error) {
	raw, ok := lookup(obj, FieldDetails)
	if !ok {
		return []model.Detail{}, nil
	}
	var elems []any
	switch list := raw.(type) {
	case []any:
		elems = list
	case []map[string]any:
		elems = make([]any, len(list))
		for i, e := range list {
			elems[i] = e
		}
	default:
		return nil, &FieldTypeError{Field: FieldDetails, Index: topLevel, Want: "array", Got: jsonType(raw)}
	}

	out := make([]model.Detail, 0, len(elems))
	for i, e := range elems {
		entry, ok := e.(map[string]any)
		if !ok {
			return nil, &MalformedSequenceElementError{Field: FieldDetails, Index: i, Want: "object", Got: jsonType(e)}
		}
		d, err := DecodeDetail(i, entry)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// DecodeDetail converts one element of a message's details sequence. index
// is the element's position in that sequence and is reported in errors.
func DecodeDetail(index int, obj map[string]any) (model.Detail, error) {
	var (
		d   model.Detail
		err error
	)
	if d.Position, err = requireInt(obj, FieldPosition, index); err != nil {
		return model.Detail{}, err
	}
	if d.Type, err = requireString(obj, FieldType, index); err != nil {
		return model.Detail{}, err
	}
	if d.Value, err = requireString(obj, FieldValue, index); err != nil {
		return model.Detail{}, err
	}
	if d.Key, err = optionalString(obj, FieldKey, index); err != nil {
		return model.Detail{}, err
	}
	if raw, ok := lookup(obj, FieldValueRaw); ok {
		d.ValueRaw = cloneValue(raw)
	}
	return d, nil
}
