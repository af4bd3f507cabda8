// Package chunk cuts long text into pieces small enough for a single model call.
package chunk

import (
	"strings"

	"text_humanizer/internal/sentence"
)

type Segment struct {
	Index      int
	StartToken int
	EndToken   int
	Text       string
}

func SlidingWindow(text string, segmentTokens, overlapTokens int) []Segment {
	if segmentTokens <= 0 {
		return nil
	}
	if overlapTokens < 0 {
		overlapTokens = 0
	}
	if overlapTokens >= segmentTokens {
		overlapTokens = segmentTokens - 1
	}

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	step := segmentTokens - overlapTokens
	segments := make([]Segment, 0, (len(tokens)/step)+1)
	for start := 0; start < len(tokens); start += step {
		end := min(start+segmentTokens, len(tokens))
		segments = append(segments, Segment{
			Index:      len(segments),
			StartToken: start,
			EndToken:   end,
			Text:       strings.Join(tokens[start:end], " "),
		})
		if end == len(tokens) {
			break
		}
	}

	return segments
}

// BySentence packs whole sentences into segments of at most maxChars characters. A sentence
// longer than maxChars gets a segment of its own.
func BySentence(text string, maxChars int) []Segment {
	if maxChars <= 0 || strings.TrimSpace(text) == "" {
		return nil
	}
	sentences, err := sentence.Split(text)
	if err != nil {
		sentences = sentence.RegexSplit(text)
	}

	var segments []Segment
	var cur []string
	curLen, token, startToken := 0, 0, 0
	flush := func() {
		if len(cur) == 0 {
			return
		}
		segments = append(segments, Segment{
			Index:      len(segments),
			StartToken: startToken,
			EndToken:   token,
			Text:       strings.Join(cur, " "),
		})
		cur = cur[:0]
		curLen = 0
		startToken = token
	}

	for _, s := range sentences {
		n := len([]rune(s))
		if len(cur) > 0 && curLen+1+n > maxChars {
			flush()
		}
		if len(cur) > 0 {
			curLen++
		}
		cur = append(cur, s)
		curLen += n
		token += len(strings.Fields(s))
	}
	flush()
	return segments
}
