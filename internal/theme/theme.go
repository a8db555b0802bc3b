package theme

import "github.com/fatih/color"

// Theme defines the interface for theming in the application
type Theme interface {
	// Primary returns the primary style
	Primary() *Style

	// Secondary returns the secondary style
	Secondary() *Style

	// Success returns the success style
	Success() *Style

	// Error returns the error style
	Error() *Style

	// Warning returns the warning style
	Warning() *Style

	// Info returns the info style
	Info() *Style

	// Subtle returns the subtle style
	Subtle() *Style
}

// DefaultTheme represents the default theme implementation
type DefaultTheme struct {
	primary   *Style
	secondary *Style
	success   *Style
	error     *Style
	warning   *Style
	info      *Style
	subtle    *Style
}

// NewDefaultTheme creates a new default theme
func NewDefaultTheme() *DefaultTheme {
	return &DefaultTheme{
		primary:   NewStyle(color.FgHiCyan, color.Bold),
		secondary: NewStyle(color.FgCyan),
		success:   NewStyle(color.FgHiGreen),
		error:     NewStyle(color.FgHiRed, color.Bold),
		warning:   NewStyle(color.FgHiYellow),
		info:      NewStyle(color.FgHiWhite),
		subtle:    NewStyle(color.FgHiBlack),
	}
}

// Primary returns the primary style
func (t *DefaultTheme) Primary() *Style { return t.primary }

// Secondary returns the secondary style
func (t *DefaultTheme) Secondary() *Style { return t.secondary }

// Success returns the success style
func (t *DefaultTheme) Success() *Style { return t.success }

// Error returns the error style
func (t *DefaultTheme) Error() *Style { return t.error }

// Warning returns the warning style
func (t *DefaultTheme) Warning() *Style { return t.warning }

// Info returns the info style
func (t *DefaultTheme) Info() *Style { return t.info }

// Subtle returns the subtle style
func (t *DefaultTheme) Subtle() *Style { return t.subtle }

var _ Theme = (*DefaultTheme)(nil)
