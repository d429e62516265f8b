package logsniff

import (
	"bytes"
	"io"

	"pkt.systems/jpact"
)

// Options controls rendering.
type Options struct {
	// Compact writes each record on a single line without extra whitespace.
	// The default is the expanded, indented layout.
	Compact bool
	// Color enables ANSI colouring. The decision whether colour is wanted
	// (terminal detection, --color) is made by the caller; see ShouldColor.
	Color bool
	// Palette selects token colours. Empty paints whole records in their
	// severity colour, "none" disables colour, any name from PaletteNames
	// colours tokens and keeps the severity colour on brackets and
	// punctuation.
	Palette string
	// Indent is the expanded-mode nesting indent. Default two spaces.
	Indent string
	// Human renders access and tracing records as one-line summaries.
	// Records without a summary form are rendered as JSON.
	Human bool
	// NoTimestamp drops the leading [timestamp] from summaries.
	NoTimestamp bool
}

// DefaultOptions holds the fallback rendering configuration.
var DefaultOptions = &Options{Indent: "  "}

// Renderer turns classified lines into text. It is immutable after
// construction and safe for concurrent use.
type Renderer struct {
	opts   Options
	styles severityStyles
}

// NewRenderer resolves the palette in opts (or DefaultOptions) and returns a
// Renderer. The only error is an unknown palette name.
func NewRenderer(opts *Options) (*Renderer, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	r := &Renderer{opts: *opts}
	if r.opts.Indent == "" {
		r.opts.Indent = DefaultOptions.Indent
	}
	styles, err := resolveStyles(r.opts.Palette, r.opts.Color)
	if err != nil {
		return nil, err
	}
	r.styles = styles
	return r, nil
}

// Render returns the rendering of line, terminated by a newline.
func (r *Renderer) Render(line ClassifiedLine) []byte {
	return r.AppendRender(nil, line)
}

// RenderTo writes the rendering of line to w.
func (r *Renderer) RenderTo(w io.Writer, line ClassifiedLine) error {
	_, err := w.Write(r.AppendRender(nil, line))
	return err
}

// AppendRender appends the rendering of line, including the trailing newline,
// to dst.
func (r *Renderer) AppendRender(dst []byte, line ClassifiedLine) []byte {
	if r.opts.Human && line.Profile != nil && line.Profile.Kind != KindGeneric {
		if out, ok := r.appendSummary(dst, line); ok {
			return out
		}
	}
	pal := r.palette(line.Severity)
	if r.opts.Compact && pal == (ColorPalette{}) {
		if out, ok := appendCompactPlain(dst, line.JSON); ok {
			return out
		}
	}

	p := acquirePrinter()
	defer releasePrinter(p)
	p.reset(line.JSON, pal, r.opts.Indent, r.opts.Compact)
	if err := p.print(); err != nil {
		// Lines reach the renderer only after validation; echo the source
		// rather than a partial rendering.
		dst = append(dst, line.JSON...)
		return append(dst, '\n')
	}
	dst = append(dst, p.buf...)
	return append(dst, '\n')
}

func (r *Renderer) palette(sev Severity) ColorPalette {
	if sev > SeverityFatal {
		sev = SeverityUnknown
	}
	return r.styles.tokens[sev]
}

func (r *Renderer) levelStyle(sev Severity) string {
	if sev > SeverityFatal {
		sev = SeverityUnknown
	}
	return r.styles.levels[sev]
}

func appendCompactPlain(dst, src []byte) ([]byte, bool) {
	buf := bytes.NewBuffer(dst)
	if err := jpact.CompactWriter(buf, bytes.NewReader(src), 0); err != nil || buf.Len() == len(dst) {
		return dst, false
	}
	buf.WriteByte('\n')
	return buf.Bytes(), true
}
