// Package ansi provides ANSI escape sequences and palette presets.
// The token palettes are derived from pkt.systems/pslog/ansi (MIT License).
package ansi

// Base ANSI escape codes.
const (
	Reset        = "\x1b[0m"
	Bold         = "\x1b[1m"
	Dim          = "\x1b[2m"
	Faint        = "\x1b[90m"
	Red          = "\x1b[31m"
	Green        = "\x1b[32m"
	Yellow       = "\x1b[33m"
	Blue         = "\x1b[34m"
	Magenta      = "\x1b[35m"
	Cyan         = "\x1b[36m"
	BrightRed    = "\x1b[1;31m"
	BrightGreen  = "\x1b[1;32m"
	BrightYellow = "\x1b[1;33m"
	BrightBlue   = "\x1b[1;34m"
)

// Palette holds token colours and per-severity colours. Empty entries mean
// "leave uncoloured" for tokens and "use the default level colour" for
// severities.
type Palette struct {
	Key         string
	String      string
	Num         string
	Bool        string
	Nil         string
	Brackets    string
	Punctuation string
	Trace       string
	Debug       string
	Info        string
	Warn        string
	Error       string
	Fatal       string
	Unknown     string
	Timestamp   string
}

// Levels is the fixed severity table used when no token palette is selected:
// errors red, warnings yellow, info green, debug and trace dim, unknown plain.
var Levels = Palette{
	Trace:     Dim,
	Debug:     Dim,
	Info:      Green,
	Warn:      Yellow,
	Error:     Red,
	Fatal:     BrightRed,
	Unknown:   "",
	Timestamp: Faint,
}

// PaletteJQDefault mirrors jq's default JQ_COLORS:
// 0;90:null, 0;39:false, 0;39:true, 0;39:numbers, 0;32:strings,
// 1;39:arrays, 1;39:objects, 1;34:keys.
var PaletteJQDefault = Palette{
	Key:         "\x1b[1;34m",
	String:      "\x1b[0;32m",
	Num:         "\x1b[0;39m",
	Bool:        "\x1b[0;39m",
	Nil:         "\x1b[0;90m",
	Brackets:    "\x1b[1;39m",
	Punctuation: "\x1b[1;39m",
}

// PaletteClassic is the pslog default (16-colour friendly).
var PaletteClassic = Palette{
	Key:         Cyan,
	String:      BrightBlue,
	Num:         Magenta,
	Bool:        Yellow,
	Nil:         Faint,
	Brackets:    Faint,
	Punctuation: Faint,
	Trace:       Blue,
	Debug:       Green,
	Info:        BrightGreen,
	Warn:        BrightYellow,
	Error:       BrightRed,
	Fatal:       BrightRed,
	Unknown:     Faint,
	Timestamp:   Faint,
}

// PaletteDoomNord channels doom-nord with cool glacier blues.
var PaletteDoomNord = Palette{
	Key:         "\x1b[38;5;153m",
	String:      "\x1b[38;5;152m",
	Num:         "\x1b[38;5;109m",
	Bool:        "\x1b[38;5;115m",
	Nil:         "\x1b[38;5;245m",
	Brackets:    "\x1b[38;5;110m",
	Punctuation: "\x1b[38;5;245m",
	Trace:       "\x1b[38;5;67m",
	Debug:       "\x1b[38;5;74m",
	Info:        "\x1b[38;5;117m",
	Warn:        "\x1b[38;5;179m",
	Error:       "\x1b[38;5;210m",
	Fatal:       "\x1b[38;5;204m",
	Unknown:     "\x1b[38;5;103m",
	Timestamp:   "\x1b[38;5;109m",
}

// PaletteTokyoNight draws on Tokyo Night's neon blues and warm highlights.
var PaletteTokyoNight = Palette{
	Key:         "\x1b[38;5;69m",
	String:      "\x1b[38;5;110m",
	Num:         "\x1b[38;5;176m",
	Bool:        "\x1b[38;5;117m",
	Nil:         "\x1b[38;5;244m",
	Brackets:    "\x1b[38;5;74m",
	Punctuation: "\x1b[38;5;244m",
	Trace:       "\x1b[38;5;63m",
	Debug:       "\x1b[38;5;67m",
	Info:        "\x1b[38;5;111m",
	Warn:        "\x1b[38;5;173m",
	Error:       "\x1b[38;5;210m",
	Fatal:       "\x1b[38;5;205m",
	Unknown:     "\x1b[38;5;239m",
	Timestamp:   "\x1b[38;5;109m",
}

// PaletteCatppuccinMocha recreates Catppuccin Mocha with soft pastels.
var PaletteCatppuccinMocha = Palette{
	Key:         "\x1b[38;5;217m",
	String:      "\x1b[38;5;183m",
	Num:         "\x1b[38;5;147m",
	Bool:        "\x1b[38;5;152m",
	Nil:         "\x1b[38;5;244m",
	Brackets:    "\x1b[38;5;182m",
	Punctuation: "\x1b[38;5;244m",
	Trace:       "\x1b[38;5;104m",
	Debug:       "\x1b[38;5;109m",
	Info:        "\x1b[38;5;150m",
	Warn:        "\x1b[38;5;216m",
	Error:       "\x1b[38;5;211m",
	Fatal:       "\x1b[38;5;205m",
	Unknown:     "\x1b[38;5;240m",
	Timestamp:   "\x1b[38;5;110m",
}

// PaletteSynthwave84 channels synthwave aesthetics with glowing magentas and cyans.
var PaletteSynthwave84 = Palette{
	Key:         "\x1b[38;5;198m",
	String:      "\x1b[38;5;51m",
	Num:         "\x1b[38;5;207m",
	Bool:        "\x1b[38;5;219m",
	Nil:         "\x1b[38;5;102m",
	Brackets:    "\x1b[38;5;45m",
	Punctuation: "\x1b[38;5;102m",
	Trace:       "\x1b[38;5;63m",
	Debug:       "\x1b[38;5;69m",
	Info:        "\x1b[38;5;81m",
	Warn:        "\x1b[38;5;220m",
	Error:       "\x1b[38;5;205m",
	Fatal:       "\x1b[38;5;200m",
	Unknown:     "\x1b[38;5;60m",
	Timestamp:   "\x1b[38;5;69m",
}
