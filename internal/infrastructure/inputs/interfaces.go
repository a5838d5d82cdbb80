package inputs

import "context"

// MessageInput is the minimal interface implemented by all input types.
// Start delivers every payload to the buffer and returns when the input is
// exhausted, the context is cancelled or the buffer rejects a payload.
type MessageInput interface {
	Start(ctx context.Context) error
	Stop() error
}

// SourceInput is implemented by inputs that read from a named source.
type SourceInput interface {
	MessageInput
	Source() string
}
