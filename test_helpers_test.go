package logsniff

import (
	"bytes"
	"errors"
	"testing"
)

type fdWriter struct {
	bytes.Buffer
}

func (*fdWriter) Fd() uintptr {
	return ^uintptr(0)
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

// failAfterWriter accepts fail writes, then errors.
type failAfterWriter struct {
	count int
	fail  int
	buf   bytes.Buffer
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	w.count++
	if w.count > w.fail {
		return 0, errors.New("write err")
	}
	return w.buf.Write(p)
}

type errAfterReader struct {
	data []byte
	err  error
}

func (r *errAfterReader) Read(p []byte) (int, error) {
	if len(r.data) > 0 {
		n := copy(p, r.data)
		r.data = r.data[n:]
		return n, nil
	}
	if r.err == nil {
		r.err = errors.New("read err")
	}
	return 0, r.err
}

func mustParse(t testing.TB, line string) ParsedLine {
	t.Helper()
	pl, ok := ParseLine(RawLine{Number: 1, Text: []byte(line)})
	if !ok {
		t.Fatalf("expected %q to parse as JSON", line)
	}
	return pl
}

func mustClassify(t testing.TB, line string) ClassifiedLine {
	t.Helper()
	return DefaultProfiles().Classify(mustParse(t, line))
}

func mustRenderer(t testing.TB, opts Options) *Renderer {
	t.Helper()
	r, err := NewRenderer(&opts)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r
}
