// SPDX-License-Identifier: MIT
package themes

import (
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/gorilla/css/scanner"
)

// DefaultSelector is the rule selector used when none is given
const DefaultSelector = ":root"

// FormatCSS renders vars as a single CSS rule, one custom property per line
// in name order. Values that could break out of the declaration are dropped.
func FormatCSS(selector string, vars VariableMap) string {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultSelector
	}

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		value := vars[name]
		if !isSafeValue(value) {
			log.Printf("themes: dropping unsafe value for %s: %q", name, value)
			continue
		}
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// isSafeValue reports whether value tokenizes as a plain declaration value
func isSafeValue(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	s := scanner.New(value)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return true
		case scanner.TokenError, scanner.TokenAtKeyword, scanner.TokenURI,
			scanner.TokenCDO, scanner.TokenCDC, scanner.TokenComment, scanner.TokenBOM:
			return false
		case scanner.TokenChar:
			if strings.ContainsAny(tok.Value, ";{}<>\\!") {
				return false
			}
		case scanner.TokenFunction:
			if strings.EqualFold(tok.Value, "url(") || strings.EqualFold(tok.Value, "expression(") {
				return false
			}
		}
	}
}
