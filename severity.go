package logsniff

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Severity is the canonical log level of a record. It only selects a colour;
// nothing is ever filtered by it.
type Severity uint8

// Severities in ascending order. The zero value is SeverityUnknown.
const (
	SeverityUnknown Severity = iota
	SeverityTrace
	SeverityDebug
	SeverityInfo
	SeverityWarn
	SeverityError
	SeverityFatal
)

var severityNames = [...]string{
	SeverityUnknown: "UNKNOWN",
	SeverityTrace:   "TRACE",
	SeverityDebug:   "DEBUG",
	SeverityInfo:    "INFO",
	SeverityWarn:    "WARN",
	SeverityError:   "ERROR",
	SeverityFatal:   "FATAL",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return severityNames[SeverityUnknown]
}

// severityAliases holds the lowercase spellings accepted for each level.
var severityAliases = map[string]Severity{
	"trace":       SeverityTrace,
	"debug":       SeverityDebug,
	"dbg":         SeverityDebug,
	"info":        SeverityInfo,
	"information": SeverityInfo,
	"notice":      SeverityInfo,
	"warn":        SeverityWarn,
	"warning":     SeverityWarn,
	"err":         SeverityError,
	"error":       SeverityError,
	"crit":        SeverityFatal,
	"critical":    SeverityFatal,
	"fatal":       SeverityFatal,
	"panic":       SeverityFatal,
	"emerg":       SeverityFatal,
	"alert":       SeverityFatal,
}

// ParseSeverity maps a level string to a Severity, ignoring case and
// surrounding whitespace. Unrecognised strings yield SeverityUnknown.
func ParseSeverity(s string) Severity {
	s = strings.TrimSpace(s)
	if sev, ok := severityAliases[s]; ok {
		return sev
	}
	return severityAliases[strings.ToLower(s)]
}

// Extract resolves the severity of v according to profile p. The first level
// field present decides: strings go through the alias table, anything else is
// SeverityUnknown. Access profiles with no level field fall back to the HTTP
// status rule. Extract never fails.
func Extract(v gjson.Result, p *FormatProfile) Severity {
	if p == nil {
		p = GenericProfile()
	}
	if lvl, ok := p.firstField(v, p.LevelFields); ok {
		if lvl.Type == gjson.String {
			return ParseSeverity(lvl.Str)
		}
		return SeverityUnknown
	}
	if p.Kind == KindAccess {
		if status, ok := lookupField(v, p.StatusField); ok {
			return severityFromStatus(status)
		}
	}
	return SeverityUnknown
}

// severityFromStatus maps an HTTP status to a severity: 5xx is an error, 4xx
// a warning, everything else informational. Numeric strings are accepted.
func severityFromStatus(status gjson.Result) Severity {
	var code int64
	switch status.Type {
	case gjson.Number:
		code = status.Int()
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(status.Str), 10, 64)
		if err != nil {
			return SeverityUnknown
		}
		code = n
	default:
		return SeverityUnknown
	}
	switch {
	case code >= 500 && code <= 599:
		return SeverityError
	case code >= 400 && code <= 499:
		return SeverityWarn
	default:
		return SeverityInfo
	}
}

