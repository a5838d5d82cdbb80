package decoder

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleTime = "2023-04-10T11:00:20.623748617-04:00"

// exampleObject returns a fresh copy of the reference message object.
func exampleObject() map[string]any {
	return map[string]any{
		"time":     exampleTime,
		"level":    "TRACE",
		"id":       "senzing-99990002",
		"text":     "A fake error",
		"duration": 199045,
		"location": "In main() at main.go:36",
		"errors":   []any{"0027E|Unknown DATA_SOURCE value 'DOESNTEXIST'"},
		"details": []any{
			map[string]any{"position": 1, "type": "string", "value": "DoesntExist"},
			map[string]any{"position": 2, "type": "string", "value": "1070", "valueRaw": 1070},
			map[string]any{"position": 3, "type": "int64", "value": "-1", "valueRaw": -1},
			map[string]any{"position": 4, "type": "szengine._Ctype_longlong", "value": "-2", "valueRaw": -2},
			map[string]any{"position": 5, "type": "error", "value": "0027E|Unknown DATA_SOURCE value 'DOESNTEXIST'"},
		},
	}
}

func detailAt(t *testing.T, obj map[string]any, i int) map[string]any {
	t.Helper()
	return obj["details"].([]any)[i].(map[string]any)
}

func TestDecode_Example(t *testing.T) {
	msg, err := Decode(exampleObject())
	require.NoError(t, err)

	assert.Equal(t, 2023, msg.Time.Year())
	assert.Equal(t, 623748617, msg.Time.Nanosecond())
	_, offset := msg.Time.Zone()
	assert.Equal(t, -4*60*60, offset)

	assert.Equal(t, "TRACE", msg.Level)
	assert.Equal(t, "senzing-99990002", msg.ID)
	assert.Equal(t, "A fake error", msg.Text)
	assert.Equal(t, int64(199045), msg.Duration)
	assert.Equal(t, "In main() at main.go:36", msg.Location)
	assert.Equal(t, []string{"0027E|Unknown DATA_SOURCE value 'DOESNTEXIST'"}, msg.Errors)

	require.Len(t, msg.Details, 5)
	assert.Equal(t, "DoesntExist", msg.Details[0].Value)
	assert.EqualValues(t, 1070, msg.Details[1].ValueRaw)
	assert.Nil(t, msg.Details[4].ValueRaw)
	assert.False(t, msg.Details[4].HasValueRaw())
	assert.Equal(t, "szengine._Ctype_longlong", msg.Details[3].Type)
}

func TestDecode_PreservesDetailOrder(t *testing.T) {
	obj := exampleObject()
	msg, err := Decode(obj)
	require.NoError(t, err)

	in := obj["details"].([]any)
	require.Len(t, msg.Details, len(in))
	for i := range in {
		assert.EqualValues(t, detailAt(t, obj, i)["position"], msg.Details[i].Position, "details[%d]", i)
	}
}

func TestDecode_ValueRawOptional(t *testing.T) {
	obj := exampleObject()
	msg, err := Decode(obj)
	require.NoError(t, err)

	for i, d := range msg.Details {
		raw, present := detailAt(t, obj, i)["valueRaw"]
		assert.Equal(t, present, d.HasValueRaw(), "details[%d]", i)
		if present {
			assert.Equal(t, raw, d.ValueRaw, "details[%d]", i)
		}
	}
}

func TestDecode_EmptyCollections(t *testing.T) {
	t.Run("ExplicitEmpty", func(t *testing.T) {
		obj := exampleObject()
		obj["errors"] = []any{}
		obj["details"] = []any{}

		msg, err := Decode(obj)
		require.NoError(t, err)
		assert.NotNil(t, msg.Errors)
		assert.Empty(t, msg.Errors)
		assert.NotNil(t, msg.Details)
		assert.Empty(t, msg.Details)
	})

	t.Run("Absent", func(t *testing.T) {
		obj := exampleObject()
		delete(obj, "errors")
		delete(obj, "details")

		msg, err := Decode(obj)
		require.NoError(t, err)
		assert.NotNil(t, msg.Errors)
		assert.Empty(t, msg.Errors)
		assert.NotNil(t, msg.Details)
		assert.Empty(t, msg.Details)
	})

	t.Run("Null", func(t *testing.T) {
		obj := exampleObject()
		obj["errors"] = nil
		obj["details"] = nil

		msg, err := Decode(obj)
		require.NoError(t, err)
		assert.Equal(t, []string{}, msg.Errors)
		assert.Empty(t, msg.Details)
	})
}

func TestDecode_MissingField(t *testing.T) {
	for _, field := range []string{"time", "level", "id", "text", "duration", "location"} {
		t.Run(field, func(t *testing.T) {
			obj := exampleObject()
			delete(obj, field)

			msg, err := Decode(obj)
			require.Error(t, err)
			assert.Nil(t, msg)
			assert.True(t, errors.Is(err, ErrMissingField))

			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, field, missing.Field)
			assert.Equal(t, -1, missing.Index)
			assert.Contains(t, err.Error(), field)
		})
	}
}

func TestDecode_DetailMissingField(t *testing.T) {
	for _, field := range []string{"position", "type", "value"} {
		t.Run(field, func(t *testing.T) {
			obj := exampleObject()
			delete(detailAt(t, obj, 2), field)

			msg, err := Decode(obj)
			require.Error(t, err)
			assert.Nil(t, msg)

			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, field, missing.Field)
			assert.Equal(t, 2, missing.Index)
			assert.Contains(t, err.Error(), "details[2]."+field)
		})
	}
}

func TestDecode_MalformedTimestamp(t *testing.T) {
	testCases := []struct {
		name  string
		value any
	}{
		{name: "NotATime", value: "yesterday"},
		{name: "NoOffset", value: "2023-04-10T11:00:20.623748617"},
		{name: "DateOnly", value: "2023-04-10"},
		{name: "BadMonth", value: "2023-13-10T11:00:20Z"},
		{name: "Empty", value: ""},
		{name: "Number", value: 1681138820},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			obj := exampleObject()
			obj["time"] = tc.value

			msg, err := Decode(obj)
			require.Error(t, err)
			assert.Nil(t, msg)
			assert.True(t, errors.Is(err, ErrMalformedTimestamp), "got %v", err)
		})
	}
}

func TestDecode_MalformedSequenceElement(t *testing.T) {
	t.Run("ErrorsElement", func(t *testing.T) {
		obj := exampleObject()
		obj["errors"] = []any{"ok", 42}

		_, err := Decode(obj)
		var bad *MalformedSequenceElementError
		require.True(t, errors.As(err, &bad))
		assert.Equal(t, "errors", bad.Field)
		assert.Equal(t, 1, bad.Index)
		assert.Equal(t, "number", bad.Got)
		assert.True(t, errors.Is(err, ErrMalformedSequenceElement))
	})

	t.Run("DetailsElement", func(t *testing.T) {
		obj := exampleObject()
		obj["details"] = []any{"Bob"}

		_, err := Decode(obj)
		var bad *MalformedSequenceElementError
		require.True(t, errors.As(err, &bad))
		assert.Equal(t, "details", bad.Field)
		assert.Equal(t, 0, bad.Index)
		assert.Equal(t, "object", bad.Want)
	})
}

func TestDecode_FieldType(t *testing.T) {
	testCases := []struct {
		name  string
		mut   func(obj map[string]any)
		field string
	}{
		{name: "LevelNumber", mut: func(o map[string]any) { o["level"] = 7 }, field: "level"},
		{name: "DurationString", mut: func(o map[string]any) { o["duration"] = "199045" }, field: "duration"},
		{name: "DurationFraction", mut: func(o map[string]any) { o["duration"] = 1.5 }, field: "duration"},
		{name: "ErrorsObject", mut: func(o map[string]any) { o["errors"] = map[string]any{} }, field: "errors"},
		{name: "DetailsString", mut: func(o map[string]any) { o["details"] = "none" }, field: "details"},
		{name: "StatusBool", mut: func(o map[string]any) { o["status"] = true }, field: "status"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			obj := exampleObject()
			tc.mut(obj)

			msg, err := Decode(obj)
			assert.Nil(t, msg)
			var typeErr *FieldTypeError
			require.True(t, errors.As(err, &typeErr), "got %v", err)
			assert.Equal(t, tc.field, typeErr.Field)
			assert.True(t, errors.Is(err, ErrFieldType))
		})
	}
}

func TestDecode_NumberCoercion(t *testing.T) {
	testCases := []struct {
		name  string
		value any
	}{
		{name: "Int", value: 199045},
		{name: "Int64", value: int64(199045)},
		{name: "Uint32", value: uint32(199045)},
		{name: "IntegralFloat", value: float64(199045)},
		{name: "JSONNumber", value: json.Number("199045")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			obj := exampleObject()
			obj["duration"] = tc.value

			msg, err := Decode(obj)
			require.NoError(t, err)
			assert.Equal(t, int64(199045), msg.Duration)
		})
	}
}

func TestDecode_OptionalFields(t *testing.T) {
	obj := exampleObject()
	obj["status"] = "SENZ0027"
	detailAt(t, obj, 0)["key"] = "dataSource"

	msg, err := Decode(obj)
	require.NoError(t, err)
	assert.Equal(t, "SENZ0027", msg.Status)
	assert.Equal(t, "dataSource", msg.Details[0].Key)
	assert.Empty(t, msg.Details[1].Key)
}

func TestDecode_NativeSlices(t *testing.T) {
	obj := exampleObject()
	obj["errors"] = []string{"first", "second"}
	obj["details"] = []map[string]any{
		{"position": 1, "type": "string", "value": "Bob"},
	}

	msg, err := Decode(obj)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, msg.Errors)
	require.Len(t, msg.Details, 1)
	assert.Equal(t, "Bob", msg.Details[0].Value)
}

func TestDecode_DoesNotAliasInput(t *testing.T) {
	obj := exampleObject()
	nested := map[string]any{"code": "0027E"}
	detailAt(t, obj, 4)["valueRaw"] = nested
	errs := []string{"original"}
	obj["errors"] = errs

	msg, err := Decode(obj)
	require.NoError(t, err)

	nested["code"] = "changed"
	errs[0] = "changed"

	assert.Equal(t, map[string]any{"code": "0027E"}, msg.Details[4].ValueRaw)
	assert.Equal(t, []string{"original"}, msg.Errors)
	assert.Equal(t, "In main() at main.go:36", obj["location"], "input must not be modified")
}

func TestDecode_Deterministic(t *testing.T) {
	first, err := Decode(exampleObject())
	require.NoError(t, err)
	second, err := Decode(exampleObject())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeDetail(t *testing.T) {
	d, err := DecodeDetail(3, map[string]any{
		"position": 4,
		"type":     "szengine._Ctype_longlong",
		"value":    "-2",
		"valueRaw": -2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), d.Position)
	assert.Equal(t, "-2", d.Value)
	assert.Equal(t, -2, d.ValueRaw)

	_, err = DecodeDetail(3, map[string]any{"position": 4, "type": "string"})
	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, MissingFieldError{Field: "value", Index: 3}, *missing)
}
