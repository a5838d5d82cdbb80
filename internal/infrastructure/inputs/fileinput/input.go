package fileinput

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akave-ai/msgdecode/internal/infrastructure/inputs"
	"github.com/klauspost/compress/zstd"
)

// StdinPath selects standard input instead of a file.
const StdinPath = "-"

// Compression modes.
const (
	CompressionAuto = "auto"
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

// Input reads one file (or stdin) and inserts its content as a single payload.
type Input struct {
	path        string
	source      string
	compression string
	buffer      inputs.InputBuffer
	stdin       io.Reader
	file        *os.File
}

// NewInput creates a file input. source labels the payload and defaults to path.
func NewInput(path, source, compression string, buffer inputs.InputBuffer) *Input {
	path = strings.TrimSpace(path)
	source = strings.TrimSpace(source)
	if source == "" {
		source = path
	}
	if compression == "" {
		compression = CompressionAuto
	}
	return &Input{
		path:        path,
		source:      source,
		compression: compression,
		buffer:      buffer,
		stdin:       os.Stdin,
	}
}

var _ inputs.SourceInput = (*Input)(nil)

func (i *Input) Source() string { return i.source }

func (i *Input) Start(ctx context.Context) error {
	var r io.Reader
	if i.path == StdinPath {
		r = i.stdin
	} else {
		f, err := os.Open(i.path)
		if err != nil {
			return fmt.Errorf("open %s: %w", i.path, err)
		}
		i.file = f
		r = f
	}

	data, err := i.read(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", i.source, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return i.buffer.Insert(inputs.Payload{Source: i.source, Data: data})
}

func (i *Input) read(r io.Reader) ([]byte, error) {
	switch i.mode() {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		return io.ReadAll(dec)
	default:
		return io.ReadAll(r)
	}
}

// mode resolves CompressionAuto from the file extension.
func (i *Input) mode() string {
	if i.compression != CompressionAuto {
		return i.compression
	}
	switch strings.ToLower(filepath.Ext(i.path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

func (i *Input) Stop() error {
	if i.file == nil {
		return nil
	}
	err := i.file.Close()
	i.file = nil
	return err
}
