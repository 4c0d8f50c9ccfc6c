package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/helix/internal/presentation/graph"
	"github.com/aretw0/helix/pkg/codec"
	"github.com/aretw0/helix/pkg/domain"
	"github.com/aretw0/helix/pkg/schema"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OutputHandler defines the strategy for presenting results.
// This allows switching between text, JSON, table and markdown output.
type OutputHandler interface {
	// Output presents a transcode result.
	Output(ctx context.Context, res *domain.Result) error

	// OutputSequence presents a bare DNA sequence (e.g. a complement).
	OutputSequence(ctx context.Context, seq string) error
}

// ContentRenderer is a function that transforms markdown before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling this package.
type ContentRenderer func(string) (string, error)

// Output format names accepted by NewHandler.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatMermaid  = "mermaid"
)

// NewHandler returns the handler for a format name.
func NewHandler(format string, w io.Writer, grouped bool, renderer ContentRenderer) (OutputHandler, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		h := NewTextHandler(w)
		h.Grouped = grouped
		return h, nil
	case FormatJSON:
		h := NewJSONHandler(w)
		h.Grouped = grouped
		return h, nil
	case FormatTable:
		h := NewTableHandler(w)
		h.Grouped = grouped
		return h, nil
	case FormatMarkdown, "md":
		h := NewMarkdownHandler(w, renderer)
		h.Grouped = grouped
		return h, nil
	case FormatMermaid:
		return NewMermaidHandler(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text, json, table, markdown or mermaid)", format)
}

func binaryOf(s domain.Strand, grouped bool) string {
	if grouped {
		return codec.GroupBits(s.Binary)
	}
	return s.Binary
}

func textOf(s domain.Strand) string {
	if s.Err != nil {
		return "(" + s.Err.Error() + ")"
	}
	return strconv.Quote(s.Text)
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// TextHandler prints results as aligned plain text.
type TextHandler struct {
	Writer  io.Writer
	Grouped bool
	// Colorize, when set, decorates DNA sequences (e.g. per-base ANSI colours).
	Colorize func(string) string
}

// NewTextHandler creates a handler for plain text output.
func NewTextHandler(w io.Writer) *TextHandler {
	return &TextHandler{Writer: orStdout(w)}
}

func (h *TextHandler) Output(ctx context.Context, res *domain.Result) error {
	for _, s := range []struct {
		name   string
		strand domain.Strand
	}{
		{domain.StrandPositive, res.Positive},
		{domain.StrandNegative, res.Negative},
	} {
		if _, err := fmt.Fprintf(h.Writer, "%s strand\n  sequence: %s\n  binary:   %s\n  text:     %s\n  gc:       %.3f\n",
			s.name, h.colorize(s.strand.Sequence), binaryOf(s.strand, h.Grouped), textOf(s.strand), s.strand.GCContent); err != nil {
			return err
		}
	}
	return nil
}

func (h *TextHandler) OutputSequence(ctx context.Context, seq string) error {
	_, err := fmt.Fprintln(h.Writer, h.colorize(seq))
	return err
}

func (h *TextHandler) colorize(seq string) string {
	if h.Colorize == nil {
		return seq
	}
	return h.Colorize(seq)
}

// JSONHandler prints results using the wire schema.
type JSONHandler struct {
	Encoder *json.Encoder
	Grouped bool
}

// NewJSONHandler creates a handler for JSON output.
func NewJSONHandler(w io.Writer) *JSONHandler {
	enc := json.NewEncoder(orStdout(w))
	enc.SetIndent("", "  ")
	return &JSONHandler{Encoder: enc}
}

func (h *JSONHandler) Output(ctx context.Context, res *domain.Result) error {
	var opts []schema.ViewOption
	if h.Grouped {
		opts = append(opts, schema.WithGroupedBinary())
	}
	return h.Encoder.Encode(schema.FromResult(res, opts...))
}

func (h *JSONHandler) OutputSequence(ctx context.Context, seq string) error {
	return h.Encoder.Encode(schema.ComplementResponse{OK: true, Sequence: seq})
}

// TableHandler prints results as a box-drawn table.
type TableHandler struct {
	Writer  io.Writer
	Grouped bool
}

// NewTableHandler creates a handler for table output.
func NewTableHandler(w io.Writer) *TableHandler {
	return &TableHandler{Writer: orStdout(w)}
}

func (h *TableHandler) Output(ctx context.Context, res *domain.Result) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Strand", "Sequence", "Binary", "Text", "GC"})
	tw.AppendRow(table.Row{domain.StrandPositive, res.Positive.Sequence, binaryOf(res.Positive, h.Grouped), textOf(res.Positive), fmt.Sprintf("%.3f", res.Positive.GCContent)})
	tw.AppendRow(table.Row{domain.StrandNegative, res.Negative.Sequence, binaryOf(res.Negative, h.Grouped), textOf(res.Negative), fmt.Sprintf("%.3f", res.Negative.GCContent)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	_, err := fmt.Fprintln(h.Writer, tw.Render())
	return err
}

func (h *TableHandler) OutputSequence(ctx context.Context, seq string) error {
	_, err := fmt.Fprintln(h.Writer, seq)
	return err
}

// MarkdownHandler renders results as a markdown report, optionally through a renderer.
type MarkdownHandler struct {
	Writer   io.Writer
	Grouped  bool
	Renderer ContentRenderer
}

// NewMarkdownHandler creates a handler for markdown output.
func NewMarkdownHandler(w io.Writer, renderer ContentRenderer) *MarkdownHandler {
	return &MarkdownHandler{Writer: orStdout(w), Renderer: renderer}
}

func (h *MarkdownHandler) Output(ctx context.Context, res *domain.Result) error {
	var b strings.Builder
	title := "Result"
	if m := res.Mode.String(); m != "" {
		title = cases.Title(language.Und).String(m)
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, s := range []struct {
		name   string
		strand domain.Strand
	}{
		{"Positive strand", res.Positive},
		{"Negative strand", res.Negative},
	} {
		fmt.Fprintf(&b, "## %s\n\n", s.name)
		fmt.Fprintf(&b, "- **Sequence:** `%s`\n", s.strand.Sequence)
		fmt.Fprintf(&b, "- **Binary:** `%s`\n", binaryOf(s.strand, h.Grouped))
		fmt.Fprintf(&b, "- **Text:** `%s`\n", textOf(s.strand))
		fmt.Fprintf(&b, "- **GC content:** %.1f%%\n\n", s.strand.GCContent*100)
	}
	return h.write(b.String())
}

func (h *MarkdownHandler) OutputSequence(ctx context.Context, seq string) error {
	return h.write(fmt.Sprintf("## Complement\n\n`%s`\n", seq))
}

func (h *MarkdownHandler) write(md string) error {
	out := md
	if h.Renderer != nil {
		if rendered, err := h.Renderer(md); err == nil {
			out = rendered
		}
	}
	_, err := fmt.Fprint(h.Writer, out)
	return err
}

// MermaidHandler prints a Mermaid flowchart of the byte-to-base trace.
type MermaidHandler struct {
	Writer io.Writer
}

// NewMermaidHandler creates a handler for Mermaid output.
func NewMermaidHandler(w io.Writer) *MermaidHandler {
	return &MermaidHandler{Writer: orStdout(w)}
}

func (h *MermaidHandler) Output(ctx context.Context, res *domain.Result) error {
	_, err := fmt.Fprint(h.Writer, graph.GenerateMermaid(res))
	return err
}

func (h *MermaidHandler) OutputSequence(ctx context.Context, seq string) error {
	_, err := fmt.Fprintf(h.Writer, "graph LR\n    seq[\"%s\"]\n", seq)
	return err
}
