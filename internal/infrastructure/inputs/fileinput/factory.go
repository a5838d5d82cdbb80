package fileinput

import (
	"fmt"
	"io"

	"github.com/akave-ai/msgdecode/internal/infrastructure/inputs"
)

func init() {
	inputs.GlobalRegistry.Register(&Factory{})
}

// Factory creates file inputs. Registers as "file".
type Factory struct{}

func (f *Factory) Name() string {
	return "file"
}

func (f *Factory) ConfigSpec() inputs.InputTypeInfo {
	return inputs.InputTypeInfo{
		Type:        "file",
		Description: "Reads JSON message documents from a file or stdin. Gzip and zstd files are decompressed by extension.",
		Fields: []inputs.ConfigField{
			{Name: "path", Type: inputs.FieldString, Required: true, Description: "File to read; '-' reads stdin", Example: "messages.ndjson"},
			{Name: "compression", Type: inputs.FieldString, Required: false, Description: "auto, none, gzip or zstd (default auto: by extension)", Example: "zstd"},
			{Name: "description", Type: inputs.FieldString, Required: false, Description: "Label reported as the payload source; defaults to path", Example: "senzing-api"},
		},
	}
}

func (f *Factory) ValidateConfig(cfg inputs.Config) error {
	if cfg.String("path") == "" {
		return fmt.Errorf("missing 'path' for file input")
	}
	switch cfg.String("compression") {
	case "", CompressionAuto, CompressionNone, CompressionGzip, CompressionZstd:
		return nil
	default:
		return fmt.Errorf("unknown compression %q for file input", cfg.String("compression"))
	}
}

func (f *Factory) Create(cfg inputs.Config, buffer inputs.InputBuffer) (inputs.MessageInput, error) {
	if err := f.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	in := NewInput(cfg.String("path"), cfg.String("description"), cfg.String("compression"), buffer)
	// "stdin" overrides os.Stdin and is not listed in ConfigSpec
	if r, ok := cfg["stdin"].(io.Reader); ok {
		in.stdin = r
	}
	return in, nil
}
