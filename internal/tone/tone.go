// Package tone applies the final word-level adjustments for a requested tone.
package tone

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"text_humanizer/internal/textcase"
)

type Tone string

const (
	Casual       Tone = "casual"
	Friendly     Tone = "friendly"
	Professional Tone = "professional"
	Enthusiastic Tone = "enthusiastic"
	Neutral      Tone = "neutral"
)

var ErrUnknownTone = errors.New("unknown tone")

var order = []Tone{Casual, Friendly, Professional, Enthusiastic, Neutral}

func Parse(s string) (Tone, error) {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range order {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of %s", ErrUnknownTone, s, strings.Join(Names(), ", "))
}

func Names() []string {
	out := make([]string, len(order))
	for i, t := range order {
		out[i] = string(t)
	}
	return out
}

// Apply runs the tone's rules in order, each once over the whole text. Later rules see the
// output of earlier ones. A replacement takes the case shape of the text it replaces. An unknown
// tone leaves text as is.
func Apply(text string, t Tone) string {
	for _, r := range tables[t] {
		if r.initial {
			text = r.re.ReplaceAllString(text, "${1}"+r.repl+", ")
			continue
		}
		text = r.re.ReplaceAllStringFunc(text, func(m string) string {
			return textcase.Match(m, r.repl)
		})
	}
	return text
}

type rule struct {
	re      *regexp.Regexp
	repl    string
	initial bool
}

func rules(pairs ...string) []rule {
	out := make([]rule, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		words := strings.Fields(pairs[i])
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		out = append(out, rule{
			re:   regexp.MustCompile(`(?i)\b` + strings.Join(words, `\s+`) + `\b`),
			repl: pairs[i+1],
		})
	}
	return out
}

// sentenceInitial builds rules that only fire on a capitalised word opening a sentence. An
// optional comma after the word is absorbed and the replacement is always followed by one.
func sentenceInitial(pairs ...string) []rule {
	out := make([]rule, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, rule{
			re:      regexp.MustCompile(`(^|[.!?]\s+)` + regexp.QuoteMeta(pairs[i]) + `,?\s+`),
			repl:    pairs[i+1],
			initial: true,
		})
	}
	return out
}

func concat(parts ...[]rule) []rule {
	var out []rule
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var contractions = rules(
	"I am", "I'm",
	"you are", "you're",
	"it is", "it's",
	"that is", "that's",
	"we are", "we're",
	"they are", "they're",
	"cannot", "can't",
	"will not", "won't",
	"do not", "don't",
	"does not", "doesn't",
	"is not", "isn't",
	"are not", "aren't",
	"was not", "wasn't",
	"were not", "weren't",
	"have not", "haven't",
	"has not", "hasn't",
	"had not", "hadn't",
	"would not", "wouldn't",
	"could not", "couldn't",
	"should not", "shouldn't",
	"might not", "mightn't",
	"must not", "mustn't",
)

var casualWords = rules(
	"Furthermore", "Also",
	"Moreover", "Plus",
	"In addition", "Also",
	"Additionally", "Also",
	"However", "But",
	"Nevertheless", "Still",
	"Consequently", "So",
	"Therefore", "So",
	"Thus", "So",
	"Hence", "So",
	"Subsequently", "Then",
	"Utilize", "Use",
	"Implement", "Use",
	"Facilitate", "Help",
	"Substantial", "Big",
	"Significant", "Important",
	"Considerable", "A lot",
	"Numerous", "Many",
	"Subsequent to", "After",
	"Prior to", "Before",
	"Subsequent", "Next",
	"Prior", "Before",
	"Hello", "Hey",
	"Goodbye", "See ya",
	"Thank you", "Thanks",
	"You are welcome", "No problem",
	"I apologize", "Sorry",
	"I am sorry", "I'm sorry",
	"Excellent", "Great",
	"Outstanding", "Awesome",
	"Remarkable", "Cool",
	"Extraordinary", "Amazing",
)

var friendlyWords = rules(
	"Hello", "Hi there",
	"Goodbye", "See you later",
	"Thank you", "Thanks",
	"You are welcome", "You're welcome",
	"I apologize", "Sorry",
	"I am sorry", "I'm sorry",
	"Great", "Wonderful",
	"Good", "Nice",
	"Excellent", "Fantastic",
	"Amazing", "Incredible",
	"Awesome", "Brilliant",
	"Cool", "Lovely",
	"Interesting", "Fascinating",
	"Important", "Valuable",
	"Big", "Huge",
	"Many", "Lots of",
	"A lot", "Plenty of",
	"However", "But",
	"Nevertheless", "Still",
	"Therefore", "So",
	"Thus", "So",
	"Hence", "So",
)

var professionalWords = rules(
	"I'm sorry", "I apologize",
	"I'm", "I am",
	"You're", "You are",
	"It's", "It is",
	"That's", "That is",
	"We're", "We are",
	"They're", "They are",
	"Can't", "Cannot",
	"Won't", "Will not",
	"Don't", "Do not",
	"Doesn't", "Does not",
	"Isn't", "Is not",
	"Aren't", "Are not",
	"Wasn't", "Was not",
	"Weren't", "Were not",
	"Haven't", "Have not",
	"Hasn't", "Has not",
	"Hadn't", "Had not",
	"Wouldn't", "Would not",
	"Couldn't", "Could not",
	"Shouldn't", "Should not",
	"Hey", "Hello",
	"Hi", "Hello",
	"Thanks", "Thank you",
	"No problem", "You are welcome",
	"Sorry", "I apologize",
	"Great", "Excellent",
	"Good", "Satisfactory",
	"Nice", "Pleasant",
	"Cool", "Impressive",
	"Awesome", "Outstanding",
	"Amazing", "Remarkable",
	"Fantastic", "Exceptional",
	"Wonderful", "Commendable",
	"Brilliant", "Exceptional",
	"Lovely", "Pleasant",
	"Fascinating", "Intriguing",
	"Valuable", "Beneficial",
	"Huge", "Substantial",
	"Lots of", "Numerous",
	"Plenty of", "A significant amount of",
	"Big", "Considerable",
	"Many", "Multiple",
	"A lot", "A substantial amount of",
)

var formalConnectives = sentenceInitial(
	"Also", "Furthermore",
	"Plus", "Moreover",
	"But", "However",
	"So", "Therefore",
	"Still", "Nevertheless",
)

var enthusiasticWords = rules(
	"Great", "AMAZING",
	"Good", "EXCELLENT",
	"Nice", "FANTASTIC",
	"Cool", "AWESOME",
	"Interesting", "FASCINATING",
	"Important", "CRUCIAL",
	"Big", "HUGE",
	"Many", "TONS OF",
	"A lot", "A TREMENDOUS AMOUNT OF",
	"Excellent", "INCREDIBLE",
	"Amazing", "PHENOMENAL",
	"Awesome", "SPECTACULAR",
	"Fantastic", "OUTSTANDING",
	"Wonderful", "MAGNIFICENT",
	"Brilliant", "GENIUS",
	"Lovely", "BEAUTIFUL",
	"Fascinating", "MIND-BLOWING",
	"Valuable", "INVALUABLE",
	"Huge", "MASSIVE",
	"Lots of", "ABUNDANT",
	"Plenty of", "OVERFLOWING WITH",
)

var neutralWords = rules(
	"Awesome", "Great",
	"Fantastic", "Good",
	"Amazing", "Excellent",
	"Tons of", "Many",
	"A tremendous amount of", "A lot",
)

var casual = concat(contractions, casualWords)

var tables = map[Tone][]rule{
	Casual:       casual,
	Friendly:     concat(casual, friendlyWords),
	Professional: concat(professionalWords, formalConnectives),
	Enthusiastic: concat(casual, enthusiasticWords),
	Neutral:      concat(casual, neutralWords),
}
