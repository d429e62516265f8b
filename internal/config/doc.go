// Package config loads logsniff's optional TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/logsniff/config.toml (or
// ~/.config/logsniff/config.toml). A missing file yields Default. Every key
// is optional:
//
//	compact = false
//	color = "auto"          # auto, always or never
//	palette = ""            # "", "none" or a name from logsniff.PaletteNames
//	indent = "  "
//	human = false
//	no_timestamp = false
//	replace_builtin = false # drop the built-in tracing/nginx/http profiles
//
//	[[profile]]
//	name = "caddy"
//	kind = "access"         # access or tracing
//	required = ["request", "status", "duration"]
//	timestamp = ["ts"]
//	level = ["level"]
//	message = ["msg"]
//	status = "status"
//
// Declared profiles are appended to the built-ins; logsniff.NewProfiles then
// orders the whole set by number of required fields, keeping declaration
// order among equals. Field names may be dotted to reach nested objects.
package config
