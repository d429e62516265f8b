package logsniff

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// ProfileKind is the closed set of source formats a profile can describe.
type ProfileKind uint8

const (
	// KindGeneric performs no field remapping.
	KindGeneric ProfileKind = iota
	// KindAccess describes web-server access logs. When no level field is
	// present the severity comes from the HTTP status field.
	KindAccess
	// KindTracing describes tracing event records (timestamp, level, target).
	KindTracing
)

var kindNames = [...]string{
	KindGeneric: "generic",
	KindAccess:  "access",
	KindTracing: "tracing",
}

func (k ProfileKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ProfileKind(%d)", uint8(k))
}

// ParseProfileKind returns the kind named s (case-insensitive).
func ParseProfileKind(s string) (ProfileKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return ProfileKind(k), nil
		}
	}
	return KindGeneric, fmt.Errorf("unknown profile kind %q (use one of: %s)", s, strings.Join(kindNames[:], ", "))
}

// FormatProfile describes how to recognise a source format and where it keeps
// its timestamp, level and message. Field names may be dotted to reach into
// nested objects ("fields.message"); Required names are top-level keys.
type FormatProfile struct {
	Name            string
	Kind            ProfileKind
	Required        []string
	TimestampFields []string
	LevelFields     []string
	MessageFields   []string
	// StatusField names the HTTP status for KindAccess profiles.
	StatusField string
}

// ErrInvalidProfile is wrapped by every profile validation error.
var ErrInvalidProfile = errors.New("invalid profile")

// Validate checks that p can take part in detection.
func (p *FormatProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidProfile)
	}
	if int(p.Kind) >= len(kindNames) {
		return fmt.Errorf("%w %q: %s", ErrInvalidProfile, p.Name, p.Kind)
	}
	if p.Kind != KindGeneric && len(p.Required) == 0 {
		return fmt.Errorf("%w %q: %s profile needs required fields", ErrInvalidProfile, p.Name, p.Kind)
	}
	if p.Kind == KindAccess && strings.TrimSpace(p.StatusField) == "" {
		return fmt.Errorf("%w %q: access profile needs a status field", ErrInvalidProfile, p.Name)
	}
	return nil
}

// Timestamp returns the first timestamp field present in v.
func (p *FormatProfile) Timestamp(v gjson.Result) (gjson.Result, bool) {
	return p.firstField(v, p.TimestampFields)
}

// Message returns the first message field present in v.
func (p *FormatProfile) Message(v gjson.Result) (gjson.Result, bool) {
	return p.firstField(v, p.MessageFields)
}

func (p *FormatProfile) firstField(v gjson.Result, names []string) (gjson.Result, bool) {
	for _, name := range names {
		if f, ok := lookupField(v, name); ok {
			return f, true
		}
	}
	return gjson.Result{}, false
}

func (p *FormatProfile) matches(keys map[string]struct{}) bool {
	for _, name := range p.Required {
		if _, ok := keys[name]; !ok {
			return false
		}
	}
	return true
}

var genericProfile = FormatProfile{
	Name:            "generic",
	Kind:            KindGeneric,
	TimestampFields: []string{"ts", "time", "timestamp"},
	LevelFields:     []string{"level", "severity", "lvl"},
	MessageFields:   []string{"msg", "message"},
}

// GenericProfile returns the fallback profile used for anything no other
// profile claims, including non-object JSON values.
func GenericProfile() *FormatProfile {
	return &genericProfile
}

// BuiltinProfiles returns fresh copies of the known profiles in declaration
// order.
func BuiltinProfiles() []FormatProfile {
	return []FormatProfile{
		{
			Name:            "tracing",
			Kind:            KindTracing,
			Required:        []string{"timestamp", "level", "target"},
			TimestampFields: []string{"timestamp"},
			LevelFields:     []string{"level"},
			MessageFields:   []string{"fields.message", "message"},
		},
		{
			Name:            "nginx",
			Kind:            KindAccess,
			Required:        []string{"remote_addr", "request", "status"},
			TimestampFields: []string{"time_iso8601", "time_local", "time", "ts"},
			LevelFields:     []string{"level"},
			MessageFields:   []string{"request"},
			StatusField:     "status",
		},
		{
			Name:            "http",
			Kind:            KindAccess,
			Required:        []string{"method", "path", "status"},
			TimestampFields: []string{"ts", "time", "timestamp"},
			LevelFields:     []string{"level"},
			MessageFields:   []string{"path"},
			StatusField:     "status",
		},
	}
}

// Profiles is an immutable, ordered profile set: profiles with more required
// fields come first and the generic profile is the implicit final fallback.
// It is safe for concurrent use.
type Profiles struct {
	list []FormatProfile
}

// NewProfiles validates defs and orders them by specificity. Profiles with
// the same number of required fields keep their relative order. Generic
// profiles in defs are rejected; the generic fallback is always implied.
func NewProfiles(defs ...FormatProfile) (*Profiles, error) {
	list := make([]FormatProfile, 0, len(defs))
	seen := make(map[string]struct{}, len(defs))
	for i := range defs {
		p := cloneProfile(defs[i])
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if p.Kind == KindGeneric {
			return nil, fmt.Errorf("%w %q: generic profiles cannot be declared", ErrInvalidProfile, p.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%w %q: declared twice", ErrInvalidProfile, p.Name)
		}
		seen[p.Name] = struct{}{}
		list = append(list, p)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return len(list[i].Required) > len(list[j].Required)
	})
	return &Profiles{list: list}, nil
}

var defaultProfiles = func() *Profiles {
	ps, err := NewProfiles(BuiltinProfiles()...)
	if err != nil {
		panic(err)
	}
	return ps
}()

// DefaultProfiles returns the built-in profile set.
func DefaultProfiles() *Profiles {
	return defaultProfiles
}

// Names lists the profile names in detection order, ending with "generic".
func (ps *Profiles) Names() []string {
	names := make([]string, 0, len(ps.list)+1)
	for i := range ps.list {
		names = append(names, ps.list[i].Name)
	}
	return append(names, genericProfile.Name)
}

// Detect returns the first profile whose required fields are all top-level
// keys of v. Values that are not objects, and objects no profile claims,
// resolve to the generic profile.
func (ps *Profiles) Detect(v gjson.Result) *FormatProfile {
	if ps == nil || len(ps.list) == 0 || !v.IsObject() {
		return GenericProfile()
	}
	keys := make(map[string]struct{}, 16)
	v.ForEach(func(key, _ gjson.Result) bool {
		keys[key.Str] = struct{}{}
		return true
	})
	for i := range ps.list {
		if ps.list[i].matches(keys) {
			return &ps.list[i]
		}
	}
	return GenericProfile()
}

// Detect classifies v against DefaultProfiles.
func Detect(v gjson.Result) *FormatProfile {
	return defaultProfiles.Detect(v)
}

// lookupField walks a dotted field name through nested objects. Only the first
// occurrence of a duplicated key is considered.
func lookupField(v gjson.Result, name string) (gjson.Result, bool) {
	if name == "" {
		return gjson.Result{}, false
	}
	cur := v
	for part := range strings.SplitSeq(name, ".") {
		if !cur.IsObject() {
			return gjson.Result{}, false
		}
		var next gjson.Result
		found := false
		cur.ForEach(func(key, value gjson.Result) bool {
			if key.Str == part {
				next = value
				found = true
				return false
			}
			return true
		})
		if !found {
			return gjson.Result{}, false
		}
		cur = next
	}
	return cur, true
}

func cloneProfile(p FormatProfile) FormatProfile {
	p.Required = append([]string(nil), p.Required...)
	p.TimestampFields = append([]string(nil), p.TimestampFields...)
	p.LevelFields = append([]string(nil), p.LevelFields...)
	p.MessageFields = append([]string(nil), p.MessageFields...)
	return p
}
