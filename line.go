package logsniff

import "github.com/tidwall/gjson"

// RawLine is one input line. Number is 1-based and only used in diagnostics.
type RawLine struct {
	Number int
	Text   []byte
}

// ParsedLine is a RawLine that holds exactly one JSON value. JSON is the
// trimmed text, aliasing Raw.Text, and Value a read-only view of it.
type ParsedLine struct {
	Raw   RawLine
	JSON  []byte
	Value gjson.Result
}

// Parse reports whether line, after trimming surrounding whitespace, is a
// single well-formed JSON value. Empty lines never parse.
func Parse(line []byte) (gjson.Result, bool) {
	trimmed := trimSpaceBytes(line)
	if len(trimmed) == 0 || !gjson.ValidBytes(trimmed) {
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(trimmed), true
}

// ParseLine parses raw and keeps the trimmed JSON text for rendering.
func ParseLine(raw RawLine) (ParsedLine, bool) {
	v, ok := Parse(raw.Text)
	if !ok {
		return ParsedLine{}, false
	}
	return ParsedLine{Raw: raw, JSON: trimSpaceBytes(raw.Text), Value: v}, true
}

func trimSpaceBytes(b []byte) []byte {
	start := 0
	end := len(b)
	for start < end && b[start] <= ' ' {
		start++
	}
	for start < end && b[end-1] <= ' ' {
		end--
	}
	return b[start:end]
}
