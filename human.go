package logsniff

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"pkt.systems/logsniff/internal/ansi"
)

// accessDetails are the optional key=value pairs appended to access summaries,
// as label followed by the candidate field names.
var accessDetails = [][]string{
	{"bytes", "bytes_sent", "body_bytes_sent"},
	{"rt", "req_time", "request_time"},
	{"up", "upstream_time", "upstream_response_time"},
	{"up_addr", "upstream_addr"},
	{"req", "req_id", "request_id"},
	{"trace", "traceparent"},
	{"xff", "xff", "http_x_forwarded_for"},
	{"client", "remote_addr"},
	{"referer", "referer", "http_referer"},
	{"ua", "user_agent", "http_user_agent"},
	{"cache", "cache", "upstream_cache_status"},
}

// appendSummary renders access and tracing records as a one-line summary. It
// reports false, leaving dst untouched, when the record lacks the fields a
// summary needs.
func (r *Renderer) appendSummary(dst []byte, line ClassifiedLine) ([]byte, bool) {
	switch line.Profile.Kind {
	case KindAccess:
		return r.appendAccessSummary(dst, line)
	case KindTracing:
		return r.appendTracingSummary(dst, line)
	default:
		return dst, false
	}
}

// appendAccessSummary writes
//
//	[ts] LEVEL status METHOD host path?query PROTO - key=value ...
func (r *Renderer) appendAccessSummary(dst []byte, line ClassifiedLine) ([]byte, bool) {
	v := line.Value
	p := line.Profile
	status, ok := lookupField(v, p.StatusField)
	if !ok || (status.Type != gjson.Number && status.Type != gjson.String) {
		return dst, false
	}
	method := stringField(v, "method")
	path := stringField(v, "path")
	protocol := stringField(v, "protocol")
	if method == "" || path == "" {
		// nginx style: "request": "GET /index.html HTTP/1.1"
		parts := strings.Fields(stringField(v, "request"))
		if len(parts) < 2 {
			return dst, false
		}
		method, path = parts[0], parts[1]
		if protocol == "" && len(parts) > 2 {
			protocol = parts[2]
		}
	}

	dst = r.appendTimestamp(dst, line)
	dst = r.appendLevel(dst, line.Severity, line.Severity.String(), false)
	dst = append(dst, ' ')
	dst = appendAtom(dst, status)
	dst = append(dst, ' ')
	dst = r.appendFaint(dst, method)
	dst = append(dst, ' ')
	if host := stringField(v, "host"); host != "" {
		dst = append(dst, host...)
		dst = append(dst, ' ')
	}
	dst = append(dst, path...)
	if query := stringField(v, "query"); query != "" {
		dst = append(dst, '?')
		dst = append(dst, query...)
	}
	if protocol != "" {
		dst = append(dst, ' ')
		dst = r.appendFaint(dst, protocol)
	}
	dst = append(dst, " -"...)
	for _, detail := range accessDetails {
		for _, name := range detail[1:] {
			f, ok := lookupField(v, name)
			if !ok || f.Type == gjson.Null || (f.Type == gjson.String && f.Str == "") {
				continue
			}
			dst = appendPair(dst, detail[0], f)
			break
		}
	}
	return append(dst, '\n'), true
}

// appendTracingSummary writes the level and message, then the target, span
// and fields. In expanded mode the details go on a continuation line aligned
// under the message.
func (r *Renderer) appendTracingSummary(dst []byte, line ClassifiedLine) ([]byte, bool) {
	v := line.Value
	p := line.Profile
	msg, ok := p.Message(v)
	if !ok || msg.Type != gjson.String {
		return dst, false
	}
	target := stringField(v, "target")
	if target == "" {
		return dst, false
	}
	word := line.Severity.String()
	if line.Severity == SeverityUnknown {
		if lvl, ok := p.firstField(v, p.LevelFields); ok && lvl.Type == gjson.String {
			word = lvl.Str
		}
	}

	start := len(dst)
	dst = r.appendTimestamp(dst, line)
	indent := visibleWidth(dst[start:])
	dst = r.appendLevel(dst, line.Severity, word, true)
	dst = append(dst, ' ')
	indent += max(5, len(word)) + 1
	dst = append(dst, msg.Str...)

	if r.opts.Compact {
		dst = append(dst, ' ')
	} else {
		dst = append(dst, '\n')
		dst = append(dst, strings.Repeat(" ", indent)...)
	}
	dst = append(dst, "logger="...)
	dst = append(dst, target...)
	if span := stringField(v, "span.name"); span != "" {
		dst = append(dst, " span="...)
		dst = append(dst, span...)
	}
	if tid := stringField(v, "threadId"); tid != "" {
		dst = append(dst, " threadId="...)
		dst = append(dst, tid...)
	}
	if fields, ok := lookupField(v, "fields"); ok && fields.IsObject() {
		fields.ForEach(func(key, value gjson.Result) bool {
			if key.Str != "message" {
				dst = appendPair(dst, key.Str, value)
			}
			return true
		})
	}
	if spans, ok := lookupField(v, "spans"); ok && spans.IsArray() {
		if n := len(spans.Array()); n > 0 {
			dst = append(dst, " spans="...)
			dst = strconv.AppendInt(dst, int64(n), 10)
		}
	}
	return append(dst, '\n'), true
}

func (r *Renderer) appendTimestamp(dst []byte, line ClassifiedLine) []byte {
	if r.opts.NoTimestamp {
		return dst
	}
	ts, ok := line.Profile.Timestamp(line.Value)
	if !ok || ts.Type == gjson.Null {
		return dst
	}
	text := ts.Raw
	if ts.Type == gjson.String {
		text = ts.Str
	}
	if text == "" {
		return dst
	}
	style := r.styles.timestamp
	dst = append(dst, style...)
	dst = append(dst, '[')
	dst = append(dst, text...)
	dst = append(dst, ']')
	if style != "" {
		dst = append(dst, ansi.Reset...)
	}
	return append(dst, ' ')
}

func (r *Renderer) appendLevel(dst []byte, sev Severity, word string, pad bool) []byte {
	style := r.levelStyle(sev)
	dst = append(dst, style...)
	dst = append(dst, word...)
	if style != "" {
		dst = append(dst, ansi.Reset...)
	}
	if pad {
		for i := len(word); i < 5; i++ {
			dst = append(dst, ' ')
		}
	}
	return dst
}

func (r *Renderer) appendFaint(dst []byte, s string) []byte {
	if !r.styles.enabled {
		return append(dst, s...)
	}
	dst = append(dst, ansi.Faint...)
	dst = append(dst, s...)
	return append(dst, ansi.Reset...)
}

func appendPair(dst []byte, key string, value gjson.Result) []byte {
	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, '=')
	return appendAtom(dst, value)
}

// appendAtom writes strings bare, or quoted when they contain whitespace, and
// everything else as compact JSON.
func appendAtom(dst []byte, v gjson.Result) []byte {
	switch v.Type {
	case gjson.String:
		if v.Str == "" || strings.ContainsAny(v.Str, " \t\n\"=") {
			return append(dst, v.Raw...)
		}
		return append(dst, v.Str...)
	case gjson.JSON:
		if out, ok := appendCompactPlain(dst, []byte(v.Raw)); ok {
			return out[:len(out)-1]
		}
		return append(dst, v.Raw...)
	default:
		return append(dst, v.Raw...)
	}
}

func stringField(v gjson.Result, name string) string {
	f, ok := lookupField(v, name)
	if !ok || f.Type != gjson.String {
		return ""
	}
	return f.Str
}

// visibleWidth counts bytes outside ANSI escape sequences.
func visibleWidth(b []byte) int {
	n := 0
	for i := 0; i < len(b); i++ {
		if b[i] == 0x1b {
			for i < len(b) && b[i] != 'm' {
				i++
			}
			continue
		}
		n++
	}
	return n
}

