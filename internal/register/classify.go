// Package register assigns a coarse stylistic register to a text and holds the per-register
// synonym preferences.
package register

import (
	"fmt"
	"strings"
)

type Register string

const (
	Professional Register = "professional"
	Casual       Register = "casual"
	Technical    Register = "technical"
	Academic     Register = "academic"
)

// Default is returned when no indicator matches.
const Default = Professional

// priority also fixes the tie-break order.
var priority = []Register{Professional, Casual, Technical, Academic}

var indicators = map[Register][]string{
	Professional: {
		"business", "corporate", "professional", "formal", "official", "meeting",
		"presentation", "report", "document", "proposal", "strategy", "management",
		"executive", "director", "manager", "supervisor", "team lead", "project",
		"deadline", "milestone", "deliverable", "stakeholder", "client", "customer",
	},
	Casual: {
		"hey", "hi", "hello", "thanks", "cool", "awesome", "great", "nice",
		"friend", "buddy", "pal", "guys", "folks", "team", "chat", "message",
		"quick", "simple", "easy", "fun", "exciting", "interesting", "amazing",
	},
	Technical: {
		"code", "programming", "development", "software", "application", "system",
		"database", "api", "interface", "algorithm", "function", "method", "class",
		"variable", "parameter", "configuration", "deployment", "server", "client",
		"framework", "library", "module", "component", "architecture", "design pattern",
	},
	Academic: {
		"research", "study", "analysis", "investigation", "examination", "review",
		"literature", "methodology", "findings", "conclusion", "hypothesis", "theory",
		"data", "results", "statistics", "survey", "interview", "observation",
	},
}

func Parse(s string) (Register, error) {
	r := Register(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range priority {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown register %q", s)
}

func All() []Register {
	return append([]Register(nil), priority...)
}

// Classify returns the register with the most indicator hits.
func Classify(text string) Register {
	r, _ := Vote(text)
	return r
}

// Vote is Classify plus whether any indicator matched at all. Indicators are counted once each,
// by substring, so "hi" also fires inside "this".
func Vote(text string) (Register, bool) {
	counts := Counts(text)
	best := Default
	bestCount := 0
	for _, r := range priority {
		if counts[r] > bestCount {
			best = r
			bestCount = counts[r]
		}
	}
	if bestCount == 0 {
		return Default, false
	}
	return best, true
}

func Counts(text string) map[Register]int {
	lower := strings.ToLower(text)
	counts := make(map[Register]int, len(priority))
	for _, r := range priority {
		n := 0
		for _, ind := range indicators[r] {
			if strings.Contains(lower, ind) {
				n++
			}
		}
		counts[r] = n
	}
	return counts
}
