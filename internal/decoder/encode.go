package decoder

import (
	"time"

	"github.com/akave-ai/msgdecode/internal/model"
)

// Encode converts a Message back into its generic object form. Optional
// fields (status, key, valueRaw) are emitted only when populated.
func Encode(m *model.Message) map[string]any {
	errs := make([]any, len(m.Errors))
	for i, e := range m.Errors {
		errs[i] = e
	}
	details := make([]any, len(m.Details))
	for i, d := range m.Details {
		details[i] = EncodeDetail(d)
	}

	out := map[string]any{
		FieldTime:     m.Time.Format(time.RFC3339Nano),
		FieldLevel:    m.Level,
		FieldID:       m.ID,
		FieldText:     m.Text,
		FieldDuration: m.Duration,
		FieldLocation: m.Location,
		FieldErrors:   errs,
		FieldDetails:  details,
	}
	if m.Status != "" {
		out[FieldStatus] = m.Status
	}
	return out
}

// EncodeDetail is the inverse of DecodeDetail.
func EncodeDetail(d model.Detail) map[string]any {
	out := map[string]any{
		FieldPosition: d.Position,
		FieldType:     d.Type,
		FieldValue:    d.Value,
	}
	if d.Key != "" {
		out[FieldKey] = d.Key
	}
	if d.HasValueRaw() {
		out[FieldValueRaw] = cloneValue(d.ValueRaw)
	}
	return out
}
