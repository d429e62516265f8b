package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"pkt.systems/logsniff"
)

// Config holds the settings a config file can provide. Command-line flags
// override every field.
type Config struct {
	Compact     bool
	Color       string
	Palette     string
	Indent      string
	Human       bool
	NoTimestamp bool
	// Profiles is the complete detection set: the built-ins (unless the file
	// sets replace_builtin) followed by the file's own profiles.
	Profiles []logsniff.FormatProfile
}

// ProfileFile is one [[profile]] table.
type ProfileFile struct {
	Name      string   `toml:"name"`
	Kind      string   `toml:"kind"`
	Required  []string `toml:"required"`
	Timestamp []string `toml:"timestamp"`
	Level     []string `toml:"level"`
	Message   []string `toml:"message"`
	Status    string   `toml:"status"`
}

type fileConfig struct {
	Compact        bool          `toml:"compact"`
	Color          string        `toml:"color"`
	Palette        string        `toml:"palette"`
	Indent         *string       `toml:"indent"`
	Human          bool          `toml:"human"`
	NoTimestamp    bool          `toml:"no_timestamp"`
	ReplaceBuiltin bool          `toml:"replace_builtin"`
	Profiles       []ProfileFile `toml:"profile"`
}

const (
	defaultConfigPath = "~/.config/logsniff/config.toml"
	defaultColor      = "auto"
	defaultIndent     = "  "
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Color:    defaultColor,
		Indent:   defaultIndent,
		Profiles: logsniff.BuiltinProfiles(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/logsniff/config.toml, or the ~/.config
// equivalent when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, "logsniff", "config.toml")
	}
	return mustExpand(defaultConfigPath)
}

// Load reads the config file at path (DefaultPath when empty). A missing file
// is not an error: Default is returned instead.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse decodes a TOML config from r.
func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	cfg.Compact = raw.Compact
	cfg.Human = raw.Human
	cfg.NoTimestamp = raw.NoTimestamp
	cfg.Palette = strings.TrimSpace(raw.Palette)
	if c := strings.TrimSpace(raw.Color); c != "" {
		if _, err := logsniff.ParseColorMode(c); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.Color = c
	}
	if raw.Indent != nil {
		cfg.Indent = *raw.Indent
	}

	if raw.ReplaceBuiltin {
		cfg.Profiles = nil
	}
	for _, pf := range raw.Profiles {
		p, err := pf.profile()
		if err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.Profiles = append(cfg.Profiles, p)
	}
	if _, err := logsniff.NewProfiles(cfg.Profiles...); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (pf ProfileFile) profile() (logsniff.FormatProfile, error) {
	kind, err := logsniff.ParseProfileKind(pf.Kind)
	if err != nil {
		return logsniff.FormatProfile{}, fmt.Errorf("profile %q: %w", pf.Name, err)
	}
	return logsniff.FormatProfile{
		Name:            strings.TrimSpace(pf.Name),
		Kind:            kind,
		Required:        pf.Required,
		TimestampFields: pf.Timestamp,
		LevelFields:     pf.Level,
		MessageFields:   pf.Message,
		StatusField:     strings.TrimSpace(pf.Status),
	}, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath(), nil
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
