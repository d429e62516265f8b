package logsniff

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestParseSeverity_AliasesIgnoreCase(t *testing.T) {
	cases := map[string]Severity{
		"warn":        SeverityWarn,
		"WARNING":     SeverityWarn,
		"Warning":     SeverityWarn,
		"err":         SeverityError,
		"Error":       SeverityError,
		"ERROR":       SeverityError,
		"fatal":       SeverityFatal,
		"CRIT":        SeverityFatal,
		"critical":    SeverityFatal,
		"panic":       SeverityFatal,
		"info":        SeverityInfo,
		"Information": SeverityInfo,
		"debug":       SeverityDebug,
		"TRACE":       SeverityTrace,
		" info ":      SeverityInfo,
		"verbose":     SeverityUnknown,
		"":            SeverityUnknown,
	}
	for in, want := range cases {
		if got := ParseSeverity(in); got != want {
			t.Fatalf("ParseSeverity(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSeverity_OrderAndNames(t *testing.T) {
	order := []Severity{SeverityUnknown, SeverityTrace, SeverityDebug, SeverityInfo, SeverityWarn, SeverityError, SeverityFatal}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("expected %v < %v", order[i-1], order[i])
		}
	}
	if SeverityWarn.String() != "WARN" || SeverityUnknown.String() != "UNKNOWN" {
		t.Fatalf("unexpected names %q %q", SeverityWarn, SeverityUnknown)
	}
	if Severity(200).String() != "UNKNOWN" {
		t.Fatalf("expected out of range severity to print as UNKNOWN")
	}
}

func TestExtract_GenericTriesConventionalNames(t *testing.T) {
	cases := map[string]Severity{
		`{"level":"error","msg":"boom"}`:      SeverityError,
		`{"severity":"WARNING"}`:              SeverityWarn,
		`{"lvl":"dbg"}`:                       SeverityDebug,
		`{"level":"info","severity":"error"}`: SeverityInfo,
		`{"msg":"no level"}`:                  SeverityUnknown,
		`{"level":30}`:                        SeverityUnknown,
		`{"level":null}`:                      SeverityUnknown,
		`{"level":"loud"}`:                    SeverityUnknown,
		`["level","error"]`:                   SeverityUnknown,
		`"error"`:                             SeverityUnknown,
	}
	for line, want := range cases {
		v, ok := Parse([]byte(line))
		if !ok {
			t.Fatalf("expected %q to parse", line)
		}
		if got := Extract(v, GenericProfile()); got != want {
			t.Fatalf("Extract(%s) = %v, want %v", line, got, want)
		}
	}
}

func TestExtract_AccessStatusRule(t *testing.T) {
	cases := map[string]Severity{
		`{"remote_addr":"1.2.3.4","request":"GET / HTTP/1.1","status":503}`:                    SeverityError,
		`{"remote_addr":"1.2.3.4","request":"GET / HTTP/1.1","status":"404"}`:                  SeverityWarn,
		`{"remote_addr":"1.2.3.4","request":"GET / HTTP/1.1","status":200}`:                    SeverityInfo,
		`{"remote_addr":"1.2.3.4","request":"GET / HTTP/1.1","status":302}`:                    SeverityInfo,
		`{"remote_addr":"1.2.3.4","request":"GET / HTTP/1.1","status":"n/a"}`:                  SeverityUnknown,
		`{"remote_addr":"1.2.3.4","request":"GET / HTTP/1.1","status":500,"level":"debug"}`:    SeverityDebug,
		`{"method":"POST","path":"/api","status":418}`:                                         SeverityWarn,
		`{"method":"POST","path":"/api","status":[500]}`:                                       SeverityUnknown,
	}
	for line, want := range cases {
		cl := mustClassify(t, line)
		if cl.Profile.Kind != KindAccess {
			t.Fatalf("expected %s to classify as access, got %s", line, cl.Profile.Name)
		}
		if cl.Severity != want {
			t.Fatalf("severity of %s = %v, want %v", line, cl.Severity, want)
		}
	}
}

func TestExtract_NilProfileUsesGeneric(t *testing.T) {
	v := gjson.Parse(`{"severity":"fatal"}`)
	if got := Extract(v, nil); got != SeverityFatal {
		t.Fatalf("expected fatal, got %v", got)
	}
}
