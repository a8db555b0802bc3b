package theme

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Style represents a named color style
type Style struct {
	printer *color.Color
	writer  io.Writer
}

// NewStyle creates a new style with foreground and optional attributes
func NewStyle(fg color.Attribute, attrs ...color.Attribute) *Style {
	c := color.New(fg)
	if len(attrs) > 0 {
		c.Add(attrs...)
	}

	return &Style{
		printer: c,
		writer:  os.Stdout,
	}
}

// WithWriter sets a custom writer for the style
func (s *Style) WithWriter(w io.Writer) *Style {
	return &Style{
		printer: s.printer,
		writer:  w,
	}
}

// Print prints text using the style
func (s *Style) Print(a ...interface{}) {
	fmt.Fprint(s.writer, s.printer.Sprint(a...))
}

// Printf prints formatted text using the style
func (s *Style) Printf(format string, a ...interface{}) {
	fmt.Fprint(s.writer, s.printer.Sprintf(format, a...))
}

// Println prints text with a newline using the style
func (s *Style) Println(a ...interface{}) {
	fmt.Fprintln(s.writer, s.printer.Sprint(a...))
}
