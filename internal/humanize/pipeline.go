// Package humanize rewrites formal text into a more conversational register.
//
// The Pipeline is rule based: dictionary substitution guided by a Selector, then a fixed list of
// contractions and stock-phrase rewrites. LLMHumanizer delegates the rewrite to a language model.
package humanize

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"text_humanizer/internal/lexicon"
	"text_humanizer/internal/register"
	"text_humanizer/internal/sentence"
	"text_humanizer/internal/textcase"
)

type Logger interface {
	Log(level, stage, message, detail string)
}

type Outcome struct {
	Text      string `json:"text"`
	Degraded  bool   `json:"degraded"`
	Reason    string `json:"reason,omitempty"`
	Changes   int    `json:"changes"`
	Sentences int    `json:"sentences"`
}

type Pipeline struct {
	store    *lexicon.Store
	selector *Selector
	logger   Logger
}

var (
	spaceRun    = regexp.MustCompile(`\s+`)
	endsInPunct = regexp.MustCompile(`[.!?]["')]*$`)
)

func NewPipeline(store *lexicon.Store, selector *Selector, logger Logger) *Pipeline {
	if store == nil {
		store = lexicon.Builtin()
	}
	if selector == nil {
		selector = NewSelector(register.BuiltinPreferences(), nil, nil)
	}
	return &Pipeline{store: store, selector: selector, logger: logger}
}

// Humanize never fails. Cancellation and internal faults yield a Degraded outcome carrying the
// original text.
func (p *Pipeline) Humanize(ctx context.Context, text, tone string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = degraded(text, fmt.Sprintf("humanize panic: %v", r))
			p.log("ERROR", "humanize pipeline recovered", out.Reason)
		}
	}()

	if strings.TrimSpace(text) == "" {
		return Outcome{Text: text}
	}

	sentences, err := sentence.Split(text)
	if err != nil {
		p.log("WARN", "sentence split failed, using regex split", err.Error())
		sentences = sentence.RegexSplit(text)
	}

	reg, matched := register.Vote(text)
	if !matched {
		reg = toneRegister(tone, reg)
	}
	p.log("DEBUG", "register selected", fmt.Sprintf("%s (indicators=%t tone=%s)", reg, matched, tone))

	out.Sentences = len(sentences)
	rewritten := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if err := ctx.Err(); err != nil {
			return degraded(text, fmt.Sprintf("humanize interrupted: %v", err))
		}
		s2, n := p.substitute(s, text, reg)
		s2, m := applyRules(s2, mechanicalRules)
		if n+m == 0 {
			s2, m = applyRules(s2, fallbackRules)
		}
		out.Changes += n + m
		rewritten = append(rewritten, s2)
	}

	out.Text = clean(strings.Join(rewritten, " "))
	return out
}

// substitute replaces every dictionary hit in s. The matcher yields non-overlapping spans, so a
// replacement is never rewritten by a later key.
func (p *Pipeline) substitute(s, fullText string, reg register.Register) (string, int) {
	matcher := p.store.Matcher()
	if matcher == nil {
		return s, 0
	}
	spans := matcher.Find(s)
	if len(spans) == 0 {
		return s, 0
	}

	type edit struct {
		start, end int
		repl       string
	}
	edits := make([]edit, 0, len(spans))
	for _, sp := range spans {
		found := s[sp.Start:sp.End]
		cands, ok := p.store.Lookup(found)
		if !ok {
			continue
		}
		ctxWords := ContextWords(s, sp.Start, sp.End)
		choice, tier := p.selector.Select(strings.ToLower(found), cands, ctxWords, fullText, reg)
		if tier == TierNone {
			continue
		}
		p.log("DEBUG", "substitution", fmt.Sprintf("%s -> %s (%s)", found, choice, tier))
		edits = append(edits, edit{start: sp.Start, end: sp.End, repl: textcase.Match(found, choice)})
	}

	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		s = s[:e.start] + e.repl + s[e.end:]
	}
	return s, len(edits)
}

func (p *Pipeline) log(level, message, detail string) {
	if p.logger != nil {
		p.logger.Log(level, "HUMANIZE", message, detail)
	}
}

// toneRegister maps a requested tone onto a register when the text itself gives no signal.
func toneRegister(tone string, fallback register.Register) register.Register {
	switch strings.ToLower(strings.TrimSpace(tone)) {
	case "casual", "friendly", "enthusiastic":
		return register.Casual
	case "professional", "neutral":
		return register.Professional
	}
	return fallback
}

func clean(s string) string {
	s = strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
	if s == "" {
		return s
	}
	if !endsInPunct.MatchString(s) {
		s += "."
	}
	return textcase.Capitalize(s)
}

func degraded(text, reason string) Outcome {
	return Outcome{Text: text, Degraded: true, Reason: reason}
}

func (p *Pipeline) Store() *lexicon.Store {
	return p.store
}

// RuleCount is the number of fixed rewrite rules applied after dictionary substitution.
func RuleCount() int {
	return len(mechanicalRules) + len(fallbackRules)
}

// Finish collapses whitespace, ensures terminal punctuation and capitalizes the first letter.
func Finish(s string) string {
	return clean(s)
}
