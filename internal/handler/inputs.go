package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/akave-ai/msgdecode/internal/infrastructure/inputs"
)

// InputHandler prints the input types known to a registry. It backs the
// inputs command and does not depend on cobra.
type InputHandler struct {
	Registry *inputs.Registry
	Out      io.Writer
	JSON     bool
}

// ListTypes prints registered input type names, one per line.
func (h *InputHandler) ListTypes() error {
	types := h.Registry.ListRegistered()
	if h.JSON {
		return h.writeJSON(map[string]any{"types": types})
	}
	_, err := fmt.Fprintln(h.Out, strings.Join(types, "\n"))
	return err
}

// GetAllTypesInfo prints the config spec of every registered input type.
func (h *InputHandler) GetAllTypesInfo() error {
	all := h.Registry.AllTypesInfo()
	if h.JSON {
		return h.writeJSON(map[string]any{"types": all})
	}
	for i, info := range all {
		if i > 0 {
			if _, err := fmt.Fprintln(h.Out); err != nil {
				return err
			}
		}
		if err := h.writeInfo(info); err != nil {
			return err
		}
	}
	return nil
}

// GetTypeInfo prints the config spec for one input type.
func (h *InputHandler) GetTypeInfo(typeName string) error {
	if typeName == "" {
		return fmt.Errorf("missing input type")
	}
	info, ok := h.Registry.GetTypeInfo(typeName)
	if !ok {
		return fmt.Errorf("unknown input type: %s", typeName)
	}
	if h.JSON {
		return h.writeJSON(info)
	}
	return h.writeInfo(info)
}

func (h *InputHandler) writeInfo(info inputs.InputTypeInfo) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", info.Type, info.Description)
	for _, f := range info.Fields {
		req := "optional"
		if f.Required {
			req = "required"
		}
		fmt.Fprintf(&b, "  %-12s %-7s %-8s %s", f.Name, f.Type, req, f.Description)
		if f.Example != "" {
			fmt.Fprintf(&b, " (e.g. %s)", f.Example)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(h.Out, b.String())
	return err
}

func (h *InputHandler) writeJSON(v any) error {
	enc := json.NewEncoder(h.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
