package inputs

// Payload is one raw document body read by an input.
type Payload struct {
	Source string // file path, or "-" for stdin
	Data   []byte
}

// InputBuffer receives raw payloads from inputs.
// The CLI provides an implementation that decodes as payloads arrive.
// A non-nil error stops the input that inserted the payload.
type InputBuffer interface {
	Insert(Payload) error
}
