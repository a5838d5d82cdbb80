package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/akave-ai/msgdecode/internal/decoder"
	"github.com/akave-ai/msgdecode/internal/model"
	"github.com/akave-ai/msgdecode/internal/response"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Record is one decode result: a message or the error that replaced it.
type Record struct {
	Source  string
	Index   int // position of the document within Source, -1 for the whole payload
	Message *model.Message
	Err     error
}

// Renderer writes decode results to an output stream.
type Renderer interface {
	Render(rec Record) error
}

// Format names accepted by New.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatSummary = "summary"
	FormatLog     = "log"
)

// New returns the renderer for format. log is only used by the log format.
func New(format string, w io.Writer, color bool, log zerolog.Logger) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewTextRenderer(w, color), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	case FormatSummary:
		return NewSummaryRenderer(w), nil
	case FormatLog:
		return NewLogRenderer(log), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

var (
	styleTrace = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
	styleDebug = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))            // gray
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))            // yellow
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleFatal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("196")).
			Bold(true) // white on red
	styleID     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Faint(true) // cyan
	styleDetail = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// TextRenderer prints one line per message followed by its details and errors.
type TextRenderer struct {
	w     io.Writer
	color bool
}

// NewTextRenderer returns a Renderer that writes text to w. With color off
// no escape sequences are written.
func NewTextRenderer(w io.Writer, color bool) *TextRenderer {
	return &TextRenderer{w: w, color: color}
}

func (r *TextRenderer) Render(rec Record) error {
	// failures are reported on the log stream
	if rec.Err != nil || rec.Message == nil {
		return nil
	}
	m := rec.Message

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s %s",
		m.Time.Format(time.RFC3339Nano),
		r.paint(levelStyle(m.Level), fmt.Sprintf("%-5s", m.Level)),
		r.paint(styleID, m.ID),
		m.MessageText(),
	)
	if m.Location != "" {
		fmt.Fprintf(&b, " location=%s", m.Location)
	}
	fmt.Fprintf(&b, " duration=%d", m.Duration)
	if m.Status != "" {
		fmt.Fprintf(&b, " status=%s", m.Status)
	}
	b.WriteByte('\n')

	for _, d := range m.Details {
		line := fmt.Sprintf("    [%d] ", d.Position)
		if d.Key != "" {
			line += d.Key + "="
		}
		line += d.Value
		if d.HasValueRaw() {
			line += fmt.Sprintf(" raw=%v", d.ValueRaw)
		}
		if d.Type != "" {
			line += " (" + d.Type + ")"
		}
		b.WriteString(r.paint(styleDetail, line))
		b.WriteByte('\n')
	}
	for _, e := range m.Errors {
		b.WriteString(r.paint(styleError, "    error: "+e))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TextRenderer) paint(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func levelStyle(level string) lipgloss.Style {
	switch model.NormalizeLevel(level) {
	case model.LevelTrace:
		return styleTrace
	case model.LevelDebug:
		return styleDebug
	case model.LevelWarn:
		return styleWarn
	case model.LevelError:
		return styleError
	case model.LevelFatal, model.LevelPanic:
		return styleFatal
	default:
		return styleInfo
	}
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints one envelope per record, failures included.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON lines to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) Render(rec Record) error {
	if rec.Err != nil {
		return r.enc.Encode(response.Error(rec.Source, rec.Index, rec.Err))
	}
	return r.enc.Encode(response.OK(rec.Source, rec.Index, decoder.Encode(rec.Message)))
}

// ---------------------------------------------------------------------------
// Summary Renderer
// ---------------------------------------------------------------------------

// SummaryRenderer prints the commonly inspected fields of each message:
// the year, the text, the first detail value and every raw detail value.
type SummaryRenderer struct {
	w io.Writer
}

func NewSummaryRenderer(w io.Writer) *SummaryRenderer {
	return &SummaryRenderer{w: w}
}

func (r *SummaryRenderer) Render(rec Record) error {
	if rec.Err != nil || rec.Message == nil {
		return nil
	}
	m := rec.Message

	var b strings.Builder
	fmt.Fprintf(&b, "-- %s #%d --\n", rec.Source, rec.Index)
	fmt.Fprintf(&b, "Year: %d\n", m.Time.Year())
	fmt.Fprintf(&b, "Text: %s\n", m.MessageText())
	if first, ok := m.Detail(0); ok {
		fmt.Fprintf(&b, "First detail: %s\n", first.Value)
	}
	for _, d := range m.Details {
		raw := "<none>"
		if d.HasValueRaw() {
			raw = fmt.Sprint(d.ValueRaw)
		}
		fmt.Fprintf(&b, "Detail %d raw: %s\n", d.Position, raw)
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// ---------------------------------------------------------------------------
// Log Renderer (replay through zerolog)
// ---------------------------------------------------------------------------

// LogRenderer re-emits each message on a zerolog logger at the message's own
// level. Levels outside TRACE..PANIC are written without a level.
type LogRenderer struct {
	log zerolog.Logger
}

func NewLogRenderer(log zerolog.Logger) *LogRenderer {
	return &LogRenderer{log: log}
}

func (r *LogRenderer) Render(rec Record) error {
	if rec.Err != nil || rec.Message == nil {
		return nil
	}
	m := rec.Message

	lvl, ok := model.ZerologLevel(m.Level)
	if !ok {
		lvl = zerolog.NoLevel
	}

	// WithLevel never exits or panics, even for fatal and panic.
	ev := r.log.WithLevel(lvl).
		Str("source", rec.Source).
		Time("msg_time", m.Time).
		Str("id", m.ID).
		Int64("duration", m.Duration)
	if !ok {
		ev = ev.Str("msg_level", m.Level)
	}
	if m.Location != "" {
		ev = ev.Str("location", m.Location)
	}
	if m.Status != "" {
		ev = ev.Str("status", m.Status)
	}
	if len(m.Errors) > 0 {
		ev = ev.Strs("errors", m.Errors)
	}
	if len(m.Details) > 0 {
		ev = ev.Any("details", m.Details)
	}
	ev.Msg(m.MessageText())
	return nil
}
