// Package render holds the text-level helpers shared by the astcql renderers.
package render

import "strings"

// Ident renders a CQL identifier, double-quoting it unless it is a plain
// lower-case name that CQL would leave unchanged.
func Ident(name string) string {
	if isPlainIdent(name) {
		return name
	}
	var sb strings.Builder
	sb.WriteString("\"")
	sb.WriteString(strings.ReplaceAll(name, "\"", "\"\""))
	sb.WriteString("\"")
	return sb.String()
}

func isPlainIdent(name string) bool {
	if name == "" {
		return false
	}
	if name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		ch := name[i]
		if !((ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '_') {
			return false
		}
	}
	return true
}

// Qualified renders keyspace.name, or just name when keyspace is empty.
func Qualified(keyspace, name string) string {
	if keyspace == "" {
		return Ident(name)
	}
	return Ident(keyspace) + "." + Ident(name)
}

// TrimTerminate strips trailing whitespace from s and appends a semicolon
// if the result does not already end with one.
func TrimTerminate(s string) string {
	s = strings.TrimRightFunc(s, isSpace)
	if strings.HasSuffix(s, ";") {
		return s
	}
	return s + ";"
}

// Terminate appends a semicolon to s unless s, ignoring trailing
// whitespace, already ends with one. s itself is never trimmed.
func Terminate(s string) string {
	if strings.HasSuffix(strings.TrimRightFunc(s, isSpace), ";") {
		return s
	}
	return s + ";"
}

// isSpace reports whether r is a space or an ASCII control character.
func isSpace(r rune) bool {
	return r <= ' '
}
