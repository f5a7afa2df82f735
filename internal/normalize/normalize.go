// Package normalize holds the pure field cleaners applied to raw lead
// values. Every function is total: blank or missing input yields "", never
// an error.
package normalize

import (
	"strings"
	"unicode"
)

// Name reduces a free-form name to a single given-name token: first
// whitespace-separated word, lower-cased, first rune capitalized.
// "maría JOSÉ lopez" -> "María".
func Name(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	runes := []rune(strings.ToLower(fields[0]))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Phone strips everything that is not an ASCII digit, preserving digit
// order. "+54 (11) 5555-1234" -> "541155551234".
func Phone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Email lower-cases and trims surrounding whitespace.
func Email(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsValidEmail reports whether the trimmed value contains exactly one "@"
// and a dot somewhere after it.
func IsValidEmail(raw string) bool {
	v := strings.TrimSpace(raw)
	if strings.Count(v, "@") != 1 {
		return false
	}
	domain := v[strings.LastIndex(v, "@")+1:]
	return strings.Contains(domain, ".")
}

// Label trims a status or program label. Case and internal content are
// preserved; labels are never truncated.
func Label(raw string) string {
	return strings.TrimSpace(raw)
}

// CodePrefix returns the portion of a label before the first " - "
// separator. Some CRMs export statuses as "12 - Volver a llamar"; the
// leading code is what downstream tooling keys on. Labels without the
// separator come back unchanged.
func CodePrefix(label string) string {
	if i := strings.Index(label, " - "); i >= 0 {
		return strings.TrimSpace(label[:i])
	}
	return label
}
