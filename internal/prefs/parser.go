package prefs

import "strings"

// ParseEntry splits one raw line of a preferences file into a name and a raw
// value. It reports ok=false for lines that carry no entry: blank lines,
// comment lines starting with '#', and lines without an unescaped '='.
//
// The split happens at the first '=' not preceded by a backslash; a "\="
// sequence in the name is unescaped to a literal '='. A trailing "#comment"
// on the value is stripped, then surrounding whitespace is trimmed.
func ParseEntry(raw string) (name, value string, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	sep := indexUnescaped(trimmed, '=')
	if sep < 0 {
		return "", "", false
	}

	name = strings.TrimSpace(unescape(trimmed[:sep]))
	if name == "" {
		return "", "", false
	}

	value = trimmed[sep+1:]
	if c := strings.IndexByte(value, '#'); c >= 0 {
		value = value[:c]
	}
	value = strings.TrimSpace(value)

	return name, value, true
}

// indexUnescaped returns the index of the first occurrence of sep that is
// not preceded by a backslash, or -1.
func indexUnescaped(s string, sep byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++ // skip the escaped character
		case sep:
			return i
		}
	}
	return -1
}

// unescape removes the backslash from "\=" sequences.
func unescape(s string) string {
	if !strings.Contains(s, `\=`) {
		return s
	}
	return strings.ReplaceAll(s, `\=`, "=")
}
