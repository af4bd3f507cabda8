// Package grammar cleans up agreement, article and spacing slips left behind by word
// substitution.
//
// The passes are regex heuristics. They are known to misfire on some correct text: "an hour"
// becomes "a hour", "a user" becomes "an user", and abbreviations such as "e.g." gain a space.
package grammar

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type fix struct {
	re   *regexp.Regexp
	tmpl string
}

var agreement = []fix{
	{regexp.MustCompile(`(?i)\b(I)\s+is\b`), "${1} am"},
	{regexp.MustCompile(`(?i)\b(I)\s+has\b`), "${1} have"},
	{regexp.MustCompile(`(?i)\b(you)\s+is\b`), "${1} are"},
	{regexp.MustCompile(`(?i)\b(you)\s+has\b`), "${1} have"},
	{regexp.MustCompile(`(?i)\b(he|she|it)\s+are\b`), "${1} is"},
	{regexp.MustCompile(`(?i)\b(he|she|it)\s+have\b`), "${1} has"},
	{regexp.MustCompile(`(?i)\b(we|they)\s+is\b`), "${1} are"},
	{regexp.MustCompile(`(?i)\b(we|they)\s+has\b`), "${1} have"},
}

var articles = []fix{
	{regexp.MustCompile(`(?i)\b(a)(\s+[aeiou])`), "${1}n${2}"},
	{regexp.MustCompile(`(?i)\b(a)n(\s+[b-df-hj-np-tv-z])`), "${1}${2}"},
}

type confusable struct {
	re   *regexp.Regexp
	repl string
}

var confusables = []confusable{
	{regexp.MustCompile(`(?i)\btheir(\s+)(is|are)\b`), "there"},
	{regexp.MustCompile(`(?i)\byour(\s+)(is|are)\b`), "you"},
	{regexp.MustCompile(`(?i)\bits(\s+)(the|a|an|this|that|my|your|his|her|our|their)\b`), "it's"},
	{regexp.MustCompile(`(?i)\byour(\s+)(going|coming|doing|working|not)\b`), "you're"},
	{regexp.MustCompile(`(?i)\btheir(\s+)(going|coming|doing|working|not)\b`), "they're"},
	{regexp.MustCompile(`(?i)\bwhose(\s+)(going|coming|doing|working|not)\b`), "who's"},
}

var punctuation = []fix{
	{regexp.MustCompile(`\.{2,}`), "."},
	{regexp.MustCompile(`!{2,}`), "!"},
	{regexp.MustCompile(`\?{2,}`), "?"},
	{regexp.MustCompile(`,{2,}`), ","},
	{regexp.MustCompile(`;{2,}`), ";"},
	{regexp.MustCompile(`:{2,}`), ":"},
	{regexp.MustCompile(`\s+([,.!?;:])`), "${1}"},
	{regexp.MustCompile(`([,.!?;:])([A-Za-z])`), "${1} ${2}"},
	{regexp.MustCompile(`\(\s+`), "("},
	{regexp.MustCompile(`\s+\)`), ")"},
	{regexp.MustCompile(`\s+-\s+`), " - "},
}

var sentenceStart = regexp.MustCompile(`[.!?]\s+[a-z]`)

func Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	text = applyFixes(text, agreement)
	text = applyFixes(text, articles)
	for _, c := range confusables {
		text = c.re.ReplaceAllStringFunc(text, func(m string) string {
			parts := c.re.FindStringSubmatch(m)
			second := parts[2]
			if c.repl == "you" {
				second = "are"
			}
			return keepCase(m, c.repl) + parts[1] + second
		})
	}
	text = applyFixes(text, punctuation)
	return capitalize(text)
}

func applyFixes(text string, fixes []fix) string {
	for _, f := range fixes {
		text = f.re.ReplaceAllString(text, f.tmpl)
	}
	return text
}

func capitalize(text string) string {
	text = sentenceStart.ReplaceAllStringFunc(text, func(m string) string {
		return m[:len(m)-1] + strings.ToUpper(m[len(m)-1:])
	})
	i := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) })
	if i < 0 {
		return text
	}
	r, size := utf8.DecodeRuneInString(text[i:])
	return text[:i] + string(unicode.ToUpper(r)) + text[i+size:]
}

func keepCase(original, repl string) string {
	r, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(r) {
		first, size := utf8.DecodeRuneInString(repl)
		return string(unicode.ToUpper(first)) + repl[size:]
	}
	return repl
}
