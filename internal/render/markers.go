package render

// CountMarkers counts anonymous '?' bind markers in raw CQL text.
// Markers inside string literals, quoted identifiers, $$ blocks and
// comments are not counted. Named markers (:name) are ignored.
func CountMarkers(query string) int {
	count := 0
	n := len(query)
	for i := 0; i < n; i++ {
		switch ch := query[i]; {
		case ch == '\'' || ch == '"':
			i = skipQuoted(query, i, ch)
		case ch == '$' && i+1 < n && query[i+1] == '$':
			i = skipDollar(query, i)
		case ch == '-' && i+1 < n && query[i+1] == '-',
			ch == '/' && i+1 < n && query[i+1] == '/':
			i = skipLine(query, i)
		case ch == '/' && i+1 < n && query[i+1] == '*':
			i = skipBlock(query, i)
		case ch == '?':
			count++
		}
	}
	return count
}

// skipQuoted returns the index of the closing quote; doubled quotes are escapes.
func skipQuoted(s string, start int, quote byte) int {
	for i := start + 1; i < len(s); i++ {
		if s[i] != quote {
			continue
		}
		if i+1 < len(s) && s[i+1] == quote {
			i++
			continue
		}
		return i
	}
	return len(s)
}

func skipDollar(s string, start int) int {
	for i := start + 2; i+1 < len(s); i++ {
		if s[i] == '$' && s[i+1] == '$' {
			return i + 1
		}
	}
	return len(s)
}

func skipLine(s string, start int) int {
	for i := start; i < len(s); i++ {
		if s[i] == '\n' {
			return i
		}
	}
	return len(s)
}

func skipBlock(s string, start int) int {
	for i := start + 2; i+1 < len(s); i++ {
		if s[i] == '*' && s[i+1] == '/' {
			return i + 1
		}
	}
	return len(s)
}
