package summarize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/orsinium-labs/stopwords"

	"text_humanizer/internal/sentence"
)

var (
	englishStopwords = stopwords.MustGet("en")
	contentWord      = regexp.MustCompile(`[A-Za-z][A-Za-z'-]*`)
)

type rankedSentence struct {
	index int
	text  string
	words int
	score float64
}

// Extractive keeps the highest-scoring sentences, in document order, within maxWords.
// The best sentence is always kept, even when it alone exceeds maxWords.
func Extractive(text string, maxWords int) string {
	ranked := rank(text)
	if len(ranked) == 0 {
		return ""
	}
	byScore := append([]rankedSentence(nil), ranked...)
	sort.SliceStable(byScore, func(i, j int) bool { return byScore[i].score > byScore[j].score })

	keep := map[int]bool{}
	used := 0
	for _, r := range byScore {
		if used > 0 && used+r.words > maxWords {
			continue
		}
		keep[r.index] = true
		used += r.words
	}

	var parts []string
	for _, r := range ranked {
		if keep[r.index] {
			parts = append(parts, r.text)
		}
	}
	return strings.Join(parts, " ")
}

// TopSentences returns the n best sentences, best first.
func TopSentences(text string, n int) []string {
	ranked := rank(text)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	out := make([]string, 0, min(n, len(ranked)))
	for _, r := range ranked {
		if len(out) == n {
			break
		}
		out = append(out, r.text)
	}
	return out
}

// rank scores each sentence by the mean document frequency of its content words.
func rank(text string) []rankedSentence {
	sentences, err := sentence.Split(text)
	if err != nil || len(sentences) == 0 {
		sentences = sentence.RegexSplit(text)
	}
	freq := map[string]int{}
	tokens := make([][]string, len(sentences))
	for i, s := range sentences {
		for _, w := range contentWord.FindAllString(s, -1) {
			w = strings.ToLower(w)
			if len(w) <= 2 || englishStopwords.Contains(w) {
				continue
			}
			tokens[i] = append(tokens[i], w)
			freq[w]++
		}
	}
	out := make([]rankedSentence, 0, len(sentences))
	for i, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		r := rankedSentence{index: i, text: s, words: len(strings.Fields(s))}
		for _, w := range tokens[i] {
			r.score += float64(freq[w])
		}
		if len(tokens[i]) > 0 {
			r.score /= float64(len(tokens[i]))
		}
		out = append(out, r)
	}
	return out
}
