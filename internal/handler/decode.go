package handler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/akave-ai/msgdecode/internal/decoder"
	"github.com/akave-ai/msgdecode/internal/infrastructure/inputs"
	"github.com/akave-ai/msgdecode/internal/output"
	"github.com/akave-ai/msgdecode/internal/response"
	"github.com/rs/zerolog"
)

// ErrDecodeFailed is returned by Insert in fail-fast mode once a record fails.
var ErrDecodeFailed = errors.New("decode failed")

// Stats counts what a DecodeHandler has seen.
type Stats struct {
	Payloads int
	Decoded  int
	Rendered int
	Failed   int
}

// DecodeHandler is the inputs.InputBuffer behind the decode command. Each
// payload is split into documents, decoded, filtered and rendered. Failures
// are logged and rendered, and only stop the run when FailFast is set.
type DecodeHandler struct {
	Renderer output.Renderer
	Filter   output.LevelFilter
	Log      zerolog.Logger
	FailFast bool

	mu    sync.Mutex
	stats Stats
}

func (h *DecodeHandler) Insert(p inputs.Payload) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats.Payloads++

	docs, err := decoder.Documents(p.Data)
	if err != nil {
		return h.fail(output.Record{Source: p.Source, Index: -1, Err: err})
	}
	h.Log.Debug().Str("source", p.Source).Int("documents", len(docs)).Msg("payload received")

	for i, doc := range docs {
		msg, err := decoder.Decode(doc)
		if err != nil {
			if ferr := h.fail(output.Record{Source: p.Source, Index: i, Err: err}); ferr != nil {
				return ferr
			}
			continue
		}
		h.stats.Decoded++

		rec := output.Record{Source: p.Source, Index: i, Message: msg}
		if !h.Filter.Allow(rec) {
			continue
		}
		if err := h.Renderer.Render(rec); err != nil {
			return fmt.Errorf("render %s #%d: %w", p.Source, i, err)
		}
		h.stats.Rendered++
	}
	return nil
}

func (h *DecodeHandler) fail(rec output.Record) error {
	h.stats.Failed++
	h.Log.Error().
		Err(rec.Err).
		Str("source", rec.Source).
		Int("index", rec.Index).
		Str("kind", response.Kind(rec.Err)).
		Msg("decode failed")

	if err := h.Renderer.Render(rec); err != nil {
		return fmt.Errorf("render %s #%d: %w", rec.Source, rec.Index, err)
	}
	if h.FailFast {
		return fmt.Errorf("%w: %s #%d: %w", ErrDecodeFailed, rec.Source, rec.Index, rec.Err)
	}
	return nil
}

// Stats returns a snapshot of the counters.
func (h *DecodeHandler) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}
