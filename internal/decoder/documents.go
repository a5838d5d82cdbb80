package decoder

import (
	"fmt"

	"github.com/akave-ai/msgdecode/internal/model"
	"github.com/valyala/fastjson"
)

// Documents splits a JSON payload into message objects. The payload may be a
// single object, an array of objects, or a whitespace/newline separated
// stream of either.
func Documents(data []byte) ([]map[string]any, error) {
	var sc fastjson.Scanner
	sc.InitBytes(data)

	var docs []map[string]any
	for sc.Next() {
		v := sc.Value()
		switch v.Type() {
		case fastjson.TypeObject:
			docs = append(docs, objectValue(v))
		case fastjson.TypeArray:
			for _, elem := range v.GetArray() {
				if elem.Type() != fastjson.TypeObject {
					return nil, &MalformedDocumentError{Index: len(docs), Got: elem.Type().String()}
				}
				docs = append(docs, objectValue(elem))
			}
		default:
			return nil, &MalformedDocumentError{Index: len(docs), Got: v.Type().String()}
		}
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("scan json: %w", err)
	}
	return docs, nil
}

// Unmarshal decodes a payload holding exactly one message object.
func Unmarshal(data []byte) (*model.Message, error) {
	docs, err := Documents(data)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("expected one message object, got %d", len(docs))
	}
	return Decode(docs[0])
}

func objectValue(v *fastjson.Value) map[string]any {
	o, _ := v.Object()
	out := make(map[string]any, o.Len())
	o.Visit(func(key []byte, val *fastjson.Value) {
		out[string(key)] = genericValue(val)
	})
	return out
}

// genericValue copies a fastjson value out of the scanner's buffers.
// Integral numbers become int64, everything else numeric float64.
func genericValue(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		return objectValue(v)
	case fastjson.TypeArray:
		arr := v.GetArray()
		out := make([]any, len(arr))
		for i, e := range arr {
			out[i] = genericValue(e)
		}
		return out
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		if n, err := v.Int64(); err == nil {
			return n
		}
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}
