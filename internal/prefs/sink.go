package prefs

import "errors"

// ErrTransientColorFailure is the one known harmless error some host
// platforms report the first time a color preference is written. An import
// that fails with it is safe to retry once; see Importer.Import.
var ErrTransientColorFailure = errors.New("transient color preference failure")

// Sink is the host application's settings store, addressed by string key.
// Implementations are owned outside the import core and injected into the
// Importer so tests can substitute an in-memory fake.
type Sink interface {
	SetBoolean(name string, value bool) error
	SetInteger(name string, value int64) error
	SetColor(name string, c Color) error
}

// InMemorySink is a map-backed Sink for tests and dry inspection.
type InMemorySink struct {
	Booleans map[string]bool
	Integers map[string]int64
	Colors   map[string]Color
}

// NewInMemorySink returns an empty in-memory sink.
func NewInMemorySink() *InMemorySink {
	return &InMemorySink{
		Booleans: make(map[string]bool),
		Integers: make(map[string]int64),
		Colors:   make(map[string]Color),
	}
}

// SetBoolean stores a boolean preference.
func (s *InMemorySink) SetBoolean(name string, value bool) error {
	s.Booleans[name] = value
	return nil
}

// SetInteger stores an integer preference.
func (s *InMemorySink) SetInteger(name string, value int64) error {
	s.Integers[name] = value
	return nil
}

// SetColor stores a color preference.
func (s *InMemorySink) SetColor(name string, c Color) error {
	s.Colors[name] = c
	return nil
}

// Len returns the total number of stored preferences.
func (s *InMemorySink) Len() int {
	return len(s.Booleans) + len(s.Integers) + len(s.Colors)
}
