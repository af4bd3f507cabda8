// Package textcase copies the case shape of matched text onto its replacement.
package textcase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match gives repl the case shape of original. An all-caps original yields an all-caps
// replacement, a capitalised one a capitalised replacement, and a lowercase one a replacement
// with a lowercase first letter. The pronoun "I" and all-caps replacements are never lowered.
func Match(original, repl string) string {
	if isUpperWord(original) {
		return strings.ToUpper(repl)
	}
	first, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(first) {
		return Capitalize(repl)
	}
	if startsWithPronounI(repl) || isUpperWord(repl) {
		return repl
	}
	return lowerFirst(repl)
}

func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// isUpperWord reports whether s has more than one letter and all of them are upper case.
func isUpperWord(s string) bool {
	letters, upper := 0, 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	return letters > 1 && upper == letters
}

func startsWithPronounI(s string) bool {
	if !strings.HasPrefix(s, "I") {
		return false
	}
	if len(s) == 1 {
		return true
	}
	next, _ := utf8.DecodeRuneInString(s[1:])
	return next == '\'' || next == '’' || unicode.IsSpace(next)
}
