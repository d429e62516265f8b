package logsniff

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"pkt.systems/logsniff/internal/ansi"
)

const paletteNoneName = "none"

// ErrUnknownPalette is returned by NewRenderer for unregistered palette names.
var ErrUnknownPalette = errors.New("unknown palette")

var paletteRegistry = map[string]ansi.Palette{
	"jq":               ansi.PaletteJQDefault,
	"classic":          ansi.PaletteClassic,
	"pslog":            ansi.PaletteClassic,
	"catppuccin-mocha": ansi.PaletteCatppuccinMocha,
	"doom-nord":        ansi.PaletteDoomNord,
	"synthwave84":      ansi.PaletteSynthwave84,
	"tokyo-night":      ansi.PaletteTokyoNight,
}

// PaletteNames returns the sorted list of token palette names, including
// "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// ColorPalette holds the escape sequence for every JSON token class. Empty
// strings leave a token unstyled.
type ColorPalette struct {
	Key         string
	String      string
	Number      string
	True        string
	False       string
	Null        string
	Brackets    string
	Punctuation string
}

// severityStyles is the per-record colouring resolved once per Renderer: one
// token palette for every Severity plus the level words used by summaries.
type severityStyles struct {
	tokens    [SeverityFatal + 1]ColorPalette
	levels    [SeverityFatal + 1]string
	timestamp string
	enabled   bool
}

// resolveStyles builds the styles for the named palette. An empty name colours
// whole records with the fixed level table; "none" or color == false disables
// colouring. Unknown names are an error even when colour is off.
func resolveStyles(name string, color bool) (severityStyles, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	var st severityStyles

	var ap ansi.Palette
	tokenColors := false
	switch name {
	case "":
	case paletteNoneName:
		return st, nil
	default:
		p, ok := paletteRegistry[name]
		if !ok {
			return st, fmt.Errorf("%w %q (use one of: %s)", ErrUnknownPalette, name, strings.Join(PaletteNames(), ", "))
		}
		ap = p
		tokenColors = true
	}
	if !color {
		return st, nil
	}

	st.enabled = true
	st.timestamp = firstNonEmpty(ap.Timestamp, ansi.Levels.Timestamp)
	st.levels = [...]string{
		SeverityUnknown: firstNonEmpty(ap.Unknown, ansi.Levels.Unknown),
		SeverityTrace:   firstNonEmpty(ap.Trace, ansi.Levels.Trace),
		SeverityDebug:   firstNonEmpty(ap.Debug, ansi.Levels.Debug),
		SeverityInfo:    firstNonEmpty(ap.Info, ansi.Levels.Info),
		SeverityWarn:    firstNonEmpty(ap.Warn, ansi.Levels.Warn),
		SeverityError:   firstNonEmpty(ap.Error, ansi.Levels.Error),
		SeverityFatal:   firstNonEmpty(ap.Fatal, ansi.Levels.Fatal),
	}
	for sev, level := range st.levels {
		if tokenColors {
			st.tokens[sev] = tokenPalette(ap, level)
		} else {
			st.tokens[sev] = uniformPalette(level)
		}
	}
	return st, nil
}

// uniformPalette paints every token in the severity colour.
func uniformPalette(level string) ColorPalette {
	return ColorPalette{
		Key:         level,
		String:      level,
		Number:      level,
		True:        level,
		False:       level,
		Null:        level,
		Brackets:    level,
		Punctuation: level,
	}
}

// tokenPalette takes value colours from ap and leaves brackets and punctuation
// to the severity colour. Unknown severities fall back to ap's own structure
// colours.
func tokenPalette(ap ansi.Palette, level string) ColorPalette {
	brackets := ap.Brackets
	if brackets == "" {
		brackets = ap.Nil
	}
	punct := ap.Punctuation
	if punct == "" {
		punct = brackets
	}
	if level != "" {
		brackets, punct = level, level
	}
	return ColorPalette{
		Key:         ap.Key,
		String:      ap.String,
		Number:      ap.Num,
		True:        ap.Bool,
		False:       ap.Bool,
		Null:        ap.Nil,
		Brackets:    brackets,
		Punctuation: punct,
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
