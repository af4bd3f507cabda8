// Package phrases finds and counts whole-word occurrences of fixed phrase lists in a single
// pass over an Aho–Corasick automaton.
package phrases

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/ahocorasick"
)

type Matcher struct {
	ac       *ahocorasick.Automaton
	patterns []string
}

// New lowercases and deduplicates patterns. Empty patterns are ignored.
func New(patterns []string) (*Matcher, error) {
	seen := make(map[string]struct{}, len(patterns))
	clean := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.Join(strings.Fields(p), " "))
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		clean = append(clean, p)
	}
	m := &Matcher{patterns: clean}
	if len(clean) == 0 {
		return m, nil
	}
	ac, err := ahocorasick.NewBuilder().
		AddStrings(clean).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build phrase automaton: %w", err)
	}
	m.ac = ac
	return m, nil
}

func MustNew(patterns []string) *Matcher {
	m, err := New(patterns)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Matcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}

// Hits returns the number of whole-word occurrences of each pattern, keyed by pattern.
func (m *Matcher) Hits(text string) map[string]int {
	out := map[string]int{}
	if m.ac == nil || text == "" {
		return out
	}
	hay := []byte(strings.ToLower(text))
	for _, hit := range m.ac.FindAllOverlapping(hay) {
		if hit.PatternID < 0 || hit.PatternID >= len(m.patterns) {
			continue
		}
		if !boundary(hay, hit.Start-1) || !boundary(hay, hit.End) {
			continue
		}
		out[m.patterns[hit.PatternID]]++
	}
	return out
}

// Span is a match in the original text, as byte offsets.
type Span struct {
	Start, End int
	Pattern    string
}

// Find returns non-overlapping whole-word matches, leftmost first and longest at each start.
// Case folding is ASCII only and any whitespace run in text matches the single space of a
// multi-word pattern.
func (m *Matcher) Find(text string) []Span {
	if m.ac == nil || text == "" {
		return nil
	}
	hay, offsets := fold(text)
	var cands []Span
	for _, hit := range m.ac.FindAllOverlapping(hay) {
		if hit.PatternID < 0 || hit.PatternID >= len(m.patterns) {
			continue
		}
		if !boundary(hay, hit.Start-1) || !boundary(hay, hit.End) {
			continue
		}
		cands = append(cands, Span{Start: hit.Start, End: hit.End, Pattern: m.patterns[hit.PatternID]})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Start != cands[j].Start {
			return cands[i].Start < cands[j].Start
		}
		return cands[i].End > cands[j].End
	})

	var out []Span
	next := 0
	for _, c := range cands {
		if c.Start < next {
			continue
		}
		next = c.End
		out = append(out, Span{Start: offsets[c.Start], End: offsets[c.End-1] + 1, Pattern: c.Pattern})
	}
	return out
}

// Contains reports whether text has at least one whole-word match.
func (m *Matcher) Contains(text string) bool {
	return len(m.Find(text)) > 0
}

// fold lowercases ASCII letters and collapses whitespace runs to one space. offsets[i] is the
// position in text of hay[i].
func fold(text string) ([]byte, []int) {
	hay := make([]byte, 0, len(text))
	offsets := make([]int, 0, len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(hay) > 0 && hay[len(hay)-1] == ' ' {
				continue
			}
			b = ' '
		case b >= 'A' && b <= 'Z':
			b += 'a' - 'A'
		}
		hay = append(hay, b)
		offsets = append(offsets, i)
	}
	return hay, offsets
}

func (m *Matcher) Count(text string) int {
	n := 0
	for _, c := range m.Hits(text) {
		n += c
	}
	return n
}

// boundary reports whether hay[i] does not continue a word. Out of range counts as a boundary.
func boundary(hay []byte, i int) bool {
	if i < 0 || i >= len(hay) {
		return true
	}
	return !isWordByte(hay[i])
}

func isWordByte(b byte) bool {
	return b == '\'' || b == '_' || b >= 0x80 ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
