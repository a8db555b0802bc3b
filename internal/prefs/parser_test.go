package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEntry(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		wantName  string
		wantValue string
		wantOK    bool
	}{
		{"plain entry", "Foo=Btrue", "Foo", "Btrue", true},
		{"whitespace around name and value", "  Foo  =  I42  ", "Foo", "I42", true},
		{"empty line", "", "", "", false},
		{"blank line", "   \t ", "", "", false},
		{"comment line", "# just a comment", "", "", false},
		{"indented comment line", "   # still a comment", "", "", false},
		{"no separator", "FooBtrue", "", "", false},
		{"escaped separator only", `Foo\=Bar`, "", "", false},
		{"escaped separator in name", `Foo\=Bar=I7`, "Foo=Bar", "I7", true},
		{"separator after escape", `A\==I1`, "A=", "I1", true},
		{"value keeps later separators", "Foo=I1=2", "Foo", "I1=2", true},
		{"trailing comment stripped", "Foo=Btrue # enable it", "Foo", "Btrue", true},
		{"comment-only value", "Foo=#nothing", "Foo", "", true},
		{"empty name", "=I42", "", "", false},
		{"empty value", "Foo=", "Foo", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name, value, ok := ParseEntry(tc.raw)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantName, name)
				assert.Equal(t, tc.wantValue, value)
			}
		})
	}
}
