package model

import "time"

// Detail is one argument descriptor carried in a Message.
type Detail struct {
	Key      string `json:"key,omitempty"`      // optional; set for map-valued arguments
	Position int64  `json:"position"`           // 1-based order of the argument
	Type     string `json:"type"`               // runtime type name, informational only
	Value    string `json:"value"`              // display form
	ValueRaw any    `json:"valueRaw,omitempty"` // typed form when it differs from Value
}

// HasValueRaw reports whether the source carried a valueRaw.
func (d Detail) HasValueRaw() bool {
	return d.ValueRaw != nil
}

// Message is the decoded form of a structured log record.
type Message struct {
	Time     time.Time `json:"time"`
	Level    string    `json:"level"`
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Duration int64     `json:"duration"`
	Location string    `json:"location"`
	Status   string    `json:"status,omitempty"`
	Errors   []string  `json:"errors"`
	Details  []Detail  `json:"details"`
}

// MessageText returns Text, or the message ID when the record has no text.
func (m *Message) MessageText() string {
	if m.Text != "" {
		return m.Text
	}
	return m.ID
}

// Detail returns the detail at the zero-based index, or false when out of range.
func (m *Message) Detail(i int) (Detail, bool) {
	if i < 0 || i >= len(m.Details) {
		return Detail{}, false
	}
	return m.Details[i], true
}
