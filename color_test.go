package logsniff

import (
	"bytes"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	cases := map[string]ColorMode{
		"":        ColorAuto,
		"auto":    ColorAuto,
		"ALWAYS":  ColorAlways,
		"force":   ColorAlways,
		" never ": ColorNever,
		"off":     ColorNever,
	}
	for in, want := range cases {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseColorMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
	if ColorNever.String() != "never" || ColorMode(7).String() != "auto" {
		t.Fatalf("unexpected mode names")
	}
}

func TestShouldColor(t *testing.T) {
	var buf bytes.Buffer
	if !ShouldColor(&buf, ColorAlways) {
		t.Fatalf("always must force colour")
	}
	if ShouldColor(&buf, ColorNever) {
		t.Fatalf("never must disable colour")
	}
	if ShouldColor(&buf, ColorAuto) {
		t.Fatalf("auto must not colour a plain buffer")
	}
	if ShouldColor(&fdWriter{}, ColorAuto) {
		t.Fatalf("auto must not colour a non-terminal descriptor")
	}
}

func TestShouldColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ShouldColor(&fdWriter{}, ColorAuto) {
		t.Fatalf("NO_COLOR must disable auto colour")
	}
	if !ShouldColor(&fdWriter{}, ColorAlways) {
		t.Fatalf("always overrides NO_COLOR")
	}
}
