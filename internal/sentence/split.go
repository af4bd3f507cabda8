// Package sentence splits English prose into sentences.
package sentence

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("sentence: input is not valid UTF-8")

// abbreviations are lowercase with the trailing dot. A dot closing one of these never ends a
// sentence.
var abbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true, "sr.": true, "jr.": true,
	"st.": true, "vs.": true, "etc.": true, "inc.": true, "ltd.": true, "co.": true, "corp.": true,
	"e.g.": true, "i.e.": true, "a.m.": true, "p.m.": true, "u.s.": true, "no.": true,
	"jan.": true, "feb.": true, "mar.": true, "apr.": true, "jun.": true, "jul.": true,
	"aug.": true, "sep.": true, "sept.": true, "oct.": true, "nov.": true, "dec.": true,
	"fig.": true, "approx.": true, "dept.": true, "est.": true,
}

var terminalRun = regexp.MustCompile(`[.!?]+\s+`)

// Split returns the trimmed, non-empty sentences of text. A sentence ends at a run of
// terminal punctuation followed by whitespace and an uppercase letter, or at a blank line.
func Split(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	var out []string
	emit := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		if r == '\n' && i+1 < len(text) && text[i+1] == '\n' {
			j := i
			for j < len(text) && text[j] == '\n' {
				j++
			}
			emit(text[start:j])
			start = j
			i = j
			continue
		}

		if r == '.' || r == '?' || r == '!' || r == '…' {
			if r == '.' && isAbbreviation(text, i) {
				i += size
				continue
			}
			j := i + size
			for j < len(text) {
				nr, ns := utf8.DecodeRuneInString(text[j:])
				if nr != '.' && nr != '?' && nr != '!' && nr != '"' && nr != '\'' && nr != ')' {
					break
				}
				j += ns
			}
			if startsNewSentence(text, j) {
				emit(text[start:j])
				start = j
			}
			i = j
			continue
		}

		i += size
	}
	emit(text[start:])
	return out, nil
}

// RegexSplit breaks after every run of terminal punctuation followed by whitespace.
func RegexSplit(text string) []string {
	var out []string
	last := 0
	for _, loc := range terminalRun.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[last:loc[1]]); s != "" {
			out = append(out, s)
		}
		last = loc[1]
	}
	if s := strings.TrimSpace(text[last:]); s != "" {
		out = append(out, s)
	}
	return out
}

func startsNewSentence(s string, pos int) bool {
	i := pos
	space := false
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r):
			space = true
			i += size
		case r == '"' || r == '\'' || r == '(' || r == '“':
			if !space {
				return false
			}
			i += size
		default:
			return space && (unicode.IsUpper(r) || unicode.IsDigit(r))
		}
	}
	return false
}

func isAbbreviation(s string, dot int) bool {
	word := wordBefore(s, dot)
	if word == "" {
		return false
	}
	lower := strings.ToLower(word) + "."
	if abbreviations[lower] {
		return true
	}
	// single capital initials such as "J. Smith"
	return utf8.RuneCountInString(word) == 1 && unicode.IsUpper([]rune(word)[0])
}

// wordBefore returns the letters and inner dots immediately preceding pos, so that "e.g" is
// returned for the final dot of "e.g.".
func wordBefore(s string, pos int) string {
	i := pos
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsLetter(r) || (r == '.' && i < pos) {
			i -= size
			continue
		}
		break
	}
	return strings.Trim(s[i:pos], ".")
}
