// Package prefs implements the preferences import core: a line-oriented
// parser, a typed registry of recognized preference names, and an importer
// that applies recognized entries to a preference sink.
package prefs

import "sort"

// Kind identifies the value kind a recognized preference name accepts.
type Kind int

const (
	// KindUnknown marks a name that is in none of the recognized sets.
	KindUnknown Kind = iota

	// KindBoolean marks a preference carrying a true/false value.
	KindBoolean

	// KindInteger marks a preference carrying a base-10 integer value.
	KindInteger

	// KindColor marks a preference carrying a packed RGB color value.
	KindColor
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindColor:
		return "color"
	default:
		return "unknown"
	}
}

// Registry holds the recognized preference names, one disjoint set per value
// kind. Boolean names are split into a base set and a secondary
// "extra booleans" set; both are consulted only when the caller opts in.
type Registry struct {
	booleans      map[string]struct{}
	extraBooleans map[string]struct{}
	integers      map[string]struct{}
	colors        map[string]struct{}
}

// NewRegistry builds a registry from explicit name sets.
func NewRegistry(booleans, extraBooleans, integers, colors []string) *Registry {
	return &Registry{
		booleans:      toSet(booleans),
		extraBooleans: toSet(extraBooleans),
		integers:      toSet(integers),
		colors:        toSet(colors),
	}
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Kind reports the value kind registered for name. Boolean names (base and
// extra sets alike) are only recognized when includeBools is true, so an
// import run with booleans disabled can never touch a boolean preference.
func (r *Registry) Kind(name string, includeBools bool) Kind {
	if includeBools {
		if _, ok := r.booleans[name]; ok {
			return KindBoolean
		}
		if _, ok := r.extraBooleans[name]; ok {
			return KindBoolean
		}
	}
	if _, ok := r.integers[name]; ok {
		return KindInteger
	}
	if _, ok := r.colors[name]; ok {
		return KindColor
	}
	return KindUnknown
}

// RegisteredName describes one entry of the registry for display purposes.
type RegisteredName struct {
	Name  string
	Kind  Kind
	Extra bool
}

// All returns every registered name sorted alphabetically.
func (r *Registry) All() []RegisteredName {
	names := make([]RegisteredName, 0,
		len(r.booleans)+len(r.extraBooleans)+len(r.integers)+len(r.colors))

	for n := range r.booleans {
		names = append(names, RegisteredName{Name: n, Kind: KindBoolean})
	}
	for n := range r.extraBooleans {
		names = append(names, RegisteredName{Name: n, Kind: KindBoolean, Extra: true})
	}
	for n := range r.integers {
		names = append(names, RegisteredName{Name: n, Kind: KindInteger})
	}
	for n := range r.colors {
		names = append(names, RegisteredName{Name: n, Kind: KindColor})
	}

	sort.Slice(names, func(i, j int) bool { return names[i].Name < names[j].Name })
	return names
}

// DefaultRegistry returns the registry for the host application's known
// preference vocabulary. Names outside these sets are ignored by the
// importer, which lets users feed it a full preferences dump.
func DefaultRegistry() *Registry {
	return NewRegistry(
		[]string{
			"AutoSave",
			"ConfirmExit",
			"HighlightSyntax",
			"ShowLineNumbers",
			"ShowStatusBar",
			"ShowToolbar",
			"WordWrap",
		},
		[]string{
			"CheckUpdatesOnStartup",
			"RestoreSession",
			"UseAntialiasing",
		},
		[]string{
			"CaretWidth",
			"FontSize",
			"RecentFilesLimit",
			"TabWidth",
			"UndoLimit",
		},
		[]string{
			"BackgroundColor",
			"CaretColor",
			"ForegroundColor",
			"LineHighlightColor",
			"SelectionColor",
		},
	)
}
