package logsniff

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Stats counts line outcomes. Every line read is either rendered or dropped,
// so Lines == Rendered + Dropped.
type Stats struct {
	Lines    int
	Rendered int
	Dropped  int
}

// Pipeline reads lines, drops those that are not JSON and writes the rendering
// of the rest. Records are flushed one at a time so output keeps up with a
// live source. A Pipeline is not safe for concurrent use.
type Pipeline struct {
	w        *bufio.Writer
	renderer *Renderer
	profiles *Profiles
	reader   *bufio.Reader
	scratch  []byte
	stats    Stats
}

// NewPipeline returns a Pipeline writing to w. A nil profile set means
// DefaultProfiles; a nil renderer renders with DefaultOptions.
func NewPipeline(w io.Writer, r *Renderer, ps *Profiles) *Pipeline {
	if r == nil {
		r, _ = NewRenderer(DefaultOptions)
	}
	if ps == nil {
		ps = DefaultProfiles()
	}
	return &Pipeline{
		w:        bufio.NewWriter(w),
		renderer: r,
		profiles: ps,
	}
}

// Stats returns the counters accumulated over every Run.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

// Run processes src until end of stream. Line numbers continue across calls,
// so several inputs can be fed through one Pipeline. Read and write failures
// end the run and are returned wrapped with the line number.
func (p *Pipeline) Run(src io.Reader) error {
	if p.reader == nil {
		p.reader = bufio.NewReaderSize(nil, 64*1024)
	}
	p.reader.Reset(src)
	defer p.reader.Reset(nil)

	for {
		text, readErr := p.reader.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read line %d: %w", p.stats.Lines+1, readErr)
		}
		if len(text) > 0 {
			p.stats.Lines++
			if err := p.processLine(RawLine{Number: p.stats.Lines, Text: text}); err != nil {
				return err
			}
		}
		if readErr != nil {
			return nil
		}
	}
}

func (p *Pipeline) processLine(raw RawLine) error {
	pl, ok := ParseLine(raw)
	if !ok {
		p.stats.Dropped++
		return nil
	}
	line := p.profiles.Classify(pl)
	p.scratch = p.renderer.AppendRender(p.scratch[:0], line)
	if _, err := p.w.Write(p.scratch); err != nil {
		return fmt.Errorf("write line %d: %w", raw.Number, err)
	}
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("write line %d: %w", raw.Number, err)
	}
	p.stats.Rendered++
	if cap(p.scratch) > maxScratchCap {
		p.scratch = nil
	}
	return nil
}

// Process renders every JSON line of r to w using opts and the built-in
// profiles.
func Process(w io.Writer, r io.Reader, opts *Options) (Stats, error) {
	renderer, err := NewRenderer(opts)
	if err != nil {
		return Stats{}, err
	}
	p := NewPipeline(w, renderer, nil)
	err = p.Run(r)
	return p.Stats(), err
}
