// Package logsniff renders newline-delimited JSON logs for humans.
//
// Each input line is handled on its own: lines that are not a single JSON
// value are dropped, the rest are classified against an ordered set of format
// profiles (tracing records, nginx and HTTP access logs, or generic), given a
// Severity, and rendered either expanded (indented, key order preserved) or
// compact (one line, no extra whitespace). With colour enabled the severity
// picks the colour: errors red, warnings yellow, info green, debug and trace
// dim.
//
// Basic usage:
//
//	opts := &logsniff.Options{Compact: true}
//	if _, err := logsniff.Process(os.Stdout, os.Stdin, opts); err != nil {
//		log.Fatal(err)
//	}
//
// Single lines:
//
//	pl, ok := logsniff.ParseLine(logsniff.RawLine{Number: 1, Text: line})
//	if !ok {
//		return // not JSON
//	}
//	r, _ := logsniff.NewRenderer(&logsniff.Options{Color: true})
//	out := r.Render(logsniff.DefaultProfiles().Classify(pl))
//
// Custom profiles:
//
//	ps, err := logsniff.NewProfiles(append(logsniff.BuiltinProfiles(), logsniff.FormatProfile{
//		Name:        "caddy",
//		Kind:        logsniff.KindAccess,
//		Required:    []string{"request", "status", "duration"},
//		LevelFields: []string{"level"},
//		StatusField: "status",
//	})...)
package logsniff
