package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/logsniff"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Color != defaultColor {
		t.Fatalf("Color = %q, want %q", cfg.Color, defaultColor)
	}
	if cfg.Indent != defaultIndent {
		t.Fatalf("Indent = %q, want %q", cfg.Indent, defaultIndent)
	}
	if len(cfg.Profiles) != len(logsniff.BuiltinProfiles()) {
		t.Fatalf("Profiles = %d, want the %d built-ins", len(cfg.Profiles), len(logsniff.BuiltinProfiles()))
	}
}

func TestDefaultPath_HonoursXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := DefaultPath(), filepath.Join(dir, "logsniff", "config.toml"); got != want {
		t.Fatalf("DefaultPath = %q, want %q", got, want)
	}

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	if got := DefaultPath(); !strings.HasPrefix(got, home) {
		t.Fatalf("DefaultPath = %q, want it under HOME %q", got, home)
	}
}

func TestLoad_EmptyPathUsesDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "logsniff"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "logsniff", "config.toml"), []byte("compact = true\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Compact {
		t.Fatalf("expected compact from the default path")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := writeConfig(t, `
compact = true
color = "  always "
palette = " tokyo-night "
indent = "\t"
human = true
no_timestamp = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Compact || !cfg.Human || !cfg.NoTimestamp {
		t.Fatalf("boolean settings not applied: %+v", cfg)
	}
	if cfg.Color != "always" {
		t.Fatalf("Color = %q, want %q", cfg.Color, "always")
	}
	if cfg.Palette != "tokyo-night" {
		t.Fatalf("Palette = %q, want %q", cfg.Palette, "tokyo-night")
	}
	if cfg.Indent != "\t" {
		t.Fatalf("Indent = %q, want a tab", cfg.Indent)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	path := writeConfig(t, `
color = "   "
palette = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Color != defaultColor || cfg.Indent != defaultIndent || cfg.Palette != "" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_AppendsProfiles(t *testing.T) {
	path := writeConfig(t, `
[[profile]]
name = "caddy"
kind = "access"
required = ["request", "status", "duration"]
timestamp = ["ts"]
level = ["level"]
message = ["msg"]
status = "status"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	builtins := len(logsniff.BuiltinProfiles())
	if len(cfg.Profiles) != builtins+1 {
		t.Fatalf("Profiles = %d, want %d", len(cfg.Profiles), builtins+1)
	}
	caddy := cfg.Profiles[builtins]
	if caddy.Name != "caddy" || caddy.Kind != logsniff.KindAccess || caddy.StatusField != "status" {
		t.Fatalf("unexpected profile %+v", caddy)
	}

	ps, err := logsniff.NewProfiles(cfg.Profiles...)
	if err != nil {
		t.Fatalf("NewProfiles: %v", err)
	}
	v, _ := logsniff.Parse([]byte(`{"ts":1,"request":{"uri":"/"},"status":503,"duration":0.2}`))
	line := ps.Classify(logsniff.ParsedLine{JSON: []byte(v.Raw), Value: v})
	if line.Profile.Name != "caddy" || line.Severity != logsniff.SeverityError {
		t.Fatalf("expected caddy/ERROR, got %s/%v", line.Profile.Name, line.Severity)
	}
}

func TestLoad_ReplaceBuiltin(t *testing.T) {
	path := writeConfig(t, `
replace_builtin = true

[[profile]]
name = "svc"
kind = "tracing"
required = ["svc", "lvl"]
level = ["lvl"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Profiles) != 1 || cfg.Profiles[0].Name != "svc" {
		t.Fatalf("expected only the file's profile, got %+v", cfg.Profiles)
	}
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"bad toml":       "compact = = true",
		"bad color":      `color = "rainbow"`,
		"bad kind":       "[[profile]]\nname = \"x\"\nkind = \"syslog\"\nrequired = [\"a\"]\n",
		"missing status": "[[profile]]\nname = \"x\"\nkind = \"access\"\nrequired = [\"a\"]\n",
		"duplicate name": "[[profile]]\nname = \"nginx\"\nkind = \"tracing\"\nrequired = [\"a\"]\n",
	}
	for name, body := range cases {
		path := writeConfig(t, body)
		if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
			t.Fatalf("%s: expected parse error, got %v", name, err)
		}
	}

	path := writeConfig(t, "[[profile]]\nname = \"x\"\nkind = \"access\"\nrequired = [\"a\"]\n")
	if _, err := Load(path); !errors.Is(err, logsniff.ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
}

func TestLoad_UnreadableConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error loading a directory")
	}
}

func TestParse_ReaderError(t *testing.T) {
	if _, err := Parse(errReader{}); err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("expected read error, got %v", err)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("read err")
}
