package humanize

import (
	"regexp"
	"strings"

	"text_humanizer/internal/textcase"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

func newRule(pattern, repl string) rule {
	words := strings.Fields(pattern)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return rule{re: regexp.MustCompile(`(?i)\b` + strings.Join(words, `\s+`) + `\b`), repl: repl}
}

// mechanicalRules run on every sentence after dictionary substitution. Stock phrases come first,
// then negations so that "I will not" ends up as "I won't" instead of "I'll not".
var mechanicalRules = []rule{
	newRule("I would like to", "I want to"),
	newRule("I am going to", "I'm going to"),
	newRule("I am currently", "I'm currently"),
	newRule("We need to", "We have to"),
	newRule("Please provide", "Please give"),
	newRule("The meeting will commence", "The meeting will start"),
	newRule("The project deadline has been extended", "The project deadline was pushed back"),
	newRule("The system is experiencing technical difficulties", "The system is having technical problems"),
	newRule("We should consider all available options", "We should look at all the options"),
	newRule("writing to express", "writing to show"),
	newRule("genuine interest in", "real interest in"),
	newRule("genuine interest", "real interest"),
	newRule("position at", "job at"),
	newRule("Junior Project Manager", "Project Manager"),

	newRule("Cannot", "can't"),
	newRule("Will not", "won't"),
	newRule("Do not", "don't"),
	newRule("Does not", "doesn't"),
	newRule("Is not", "isn't"),
	newRule("Are not", "aren't"),

	newRule("I am", "I'm"),
	newRule("I will", "I'll"),
	newRule("We are", "we're"),
	newRule("We will", "we'll"),
	newRule("It is", "it's"),
	newRule("That is", "that's"),
	newRule("There is", "there's"),
	newRule("You are", "you're"),
	newRule("They are", "they're"),

	newRule("I'm writing to", "I want to"),
	newRule("express my", "show my"),
}

// fallbackRules only run on a sentence nothing else touched.
var fallbackRules = []rule{
	newRule("in order to", "to"),
	newRule("due to the fact that", "because"),
	newRule("at this point in time", "now"),
	newRule("in the event that", "if"),
	newRule("prior to", "before"),
	newRule("with regard to", "about"),
	newRule("purchase", "buy"),
	newRule("commence", "start"),
	newRule("implement", "put in place"),
	newRule("provide", "give"),
	newRule("request", "ask for"),
	newRule("extended", "pushed back"),
	newRule("experiencing", "having"),
	newRule("consider", "look at"),
	newRule("available", "possible"),
	newRule("difficulties", "problems"),
	newRule("options", "choices"),
}

func applyRules(text string, rules []rule) (string, int) {
	changes := 0
	for _, r := range rules {
		text = r.re.ReplaceAllStringFunc(text, func(m string) string {
			changes++
			return textcase.Match(m, r.repl)
		})
	}
	return text, changes
}
