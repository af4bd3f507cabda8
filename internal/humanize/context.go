package humanize

import (
	"regexp"
	"strings"

	"github.com/orsinium-labs/stopwords"
)

const (
	contextRadius = 3
	contextCap    = 10
)

var (
	englishStopwords = stopwords.MustGet("en")
	wordToken        = regexp.MustCompile(`[A-Za-z][A-Za-z'-]*`)
)

// ContextWords returns the content words within three tokens either side of sentence[start:end],
// lowercased, skipping stopwords and tokens of two letters or fewer.
func ContextWords(sentence string, start, end int) []string {
	before := wordToken.FindAllString(sentence[:start], -1)
	after := wordToken.FindAllString(sentence[end:], -1)
	if len(before) > contextRadius {
		before = before[len(before)-contextRadius:]
	}
	if len(after) > contextRadius {
		after = after[:contextRadius]
	}

	out := make([]string, 0, len(before)+len(after))
	for _, w := range append(before, after...) {
		w = strings.ToLower(w)
		if len(w) <= 2 || englishStopwords.Contains(w) {
			continue
		}
		out = append(out, w)
		if len(out) == contextCap {
			break
		}
	}
	return out
}
