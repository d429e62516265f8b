package logsniff

// ClassifiedLine is a parsed line bound to the profile that claimed it and the
// severity extracted through that profile.
type ClassifiedLine struct {
	ParsedLine
	Profile  *FormatProfile
	Severity Severity
}

// Classify runs detection and severity extraction for pl. A nil profile set
// means DefaultProfiles.
func (ps *Profiles) Classify(pl ParsedLine) ClassifiedLine {
	if ps == nil {
		ps = defaultProfiles
	}
	p := ps.Detect(pl.Value)
	return ClassifiedLine{
		ParsedLine: pl,
		Profile:    p,
		Severity:   Extract(pl.Value, p),
	}
}
