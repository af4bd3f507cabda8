// Package slop flags machine-sounding prose by counting stock phrase groups per word.
package slop

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"text_humanizer/internal/phrases"
)

//go:embed patterns.json
var patternsJSON []byte

var sentenceEnd = regexp.MustCompile(`[.!?]+`)
var wordPattern = regexp.MustCompile(`[A-Za-z']+`)

const (
	Threshold = 0.6

	ScoreAI         = "ai_probability"
	ScoreHuman      = "human_probability"
	ScoreConfidence = "semantic_confidence"
)

type patternFile struct {
	AI    map[string][]string `json:"ai"`
	Human map[string][]string `json:"human"`
}

type Report struct {
	IsAIGenerated bool               `json:"is_ai_generated"`
	Confidence    float64            `json:"confidence"`
	Scores        map[string]float64 `json:"scores"`
	Analysis      string             `json:"analysis"`
	Flags         []string           `json:"flags"`

	// Per-group whole-word counts, keyed by group name.
	AIHits    map[string]int `json:"ai_hits,omitempty"`
	HumanHits map[string]int `json:"human_hits,omitempty"`

	Monotone           bool    `json:"monotone"`
	MeanSentenceLength float64 `json:"mean_sentence_length"`
	SentenceLengthSD   float64 `json:"sentence_length_sd"`
}

type Detector struct {
	ai    map[string]*phrases.Matcher
	human map[string]*phrases.Matcher
}

// New builds a detector from the embedded pattern groups.
func New() (*Detector, error) {
	return Parse(patternsJSON)
}

// Parse builds a detector from a JSON document with "ai" and "human" group maps.
func Parse(raw []byte) (*Detector, error) {
	var doc patternFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode patterns: %w", err)
	}
	if len(doc.AI) == 0 || len(doc.Human) == 0 {
		return nil, fmt.Errorf("decode patterns: both ai and human groups are required")
	}
	d := &Detector{ai: map[string]*phrases.Matcher{}, human: map[string]*phrases.Matcher{}}
	for name, list := range doc.AI {
		m, err := phrases.New(list)
		if err != nil {
			return nil, fmt.Errorf("compile ai group %s: %w", name, err)
		}
		d.ai[name] = m
	}
	for name, list := range doc.Human {
		m, err := phrases.New(list)
		if err != nil {
			return nil, fmt.Errorf("compile human group %s: %w", name, err)
		}
		d.human[name] = m
	}
	return d, nil
}

var defaultDetector, defaultErr = New()

// Analyze runs the embedded detector.
func Analyze(text string) Report {
	if defaultErr != nil {
		return Report{Scores: map[string]float64{ScoreAI: 0}, Analysis: "Analysis unavailable", Flags: []string{}}
	}
	return defaultDetector.Analyze(text)
}

func (d *Detector) Analyze(text string) Report {
	words := strings.Fields(text)
	if len(words) == 0 {
		return Report{Scores: map[string]float64{ScoreAI: 0}, Analysis: "Empty text provided", Flags: []string{}}
	}
	n := float64(len(words))

	aiHits := countGroups(d.ai, text)
	humanHits := countGroups(d.human, text)

	aiDensity := float64(sum(aiHits)) / n
	humanDensity := float64(sum(humanHits)) / n
	formality := float64(aiHits["formal_phrases"]+aiHits["academic_phrases"]+aiHits["business_phrases"]) / n
	casual := float64(humanHits["casual_phrases"]+humanHits["emotional_words"]+humanHits["contractions"]) / n
	repetitive := float64(aiHits["repetitive_patterns"]) / n

	confidence := 0.3*math.Min(aiDensity*10, 1) +
		0.3*math.Min(formality*20, 1) +
		0.2*repetitive +
		0.1*(1-math.Min(humanDensity*5, 1)) +
		0.1*(1-math.Min(casual*10, 1))
	confidence = math.Min(confidence, 1)
	isAI := confidence > Threshold

	var parts []string
	switch {
	case aiDensity > 0.1:
		parts = append(parts, fmt.Sprintf("High AI pattern density (%.3f)", aiDensity))
	case aiDensity > 0.05:
		parts = append(parts, fmt.Sprintf("Moderate AI pattern density (%.3f)", aiDensity))
	}
	if humanDensity > 0.05 {
		parts = append(parts, fmt.Sprintf("Human pattern indicators (%.3f)", humanDensity))
	}
	if formality > 0.1 {
		parts = append(parts, fmt.Sprintf("High formality (%.3f)", formality))
	}
	if repetitive > 0.05 {
		parts = append(parts, fmt.Sprintf("Repetitive patterns (%.3f)", repetitive))
	}
	if isAI {
		parts = append(parts, "Semantic analysis suggests AI generation")
	} else {
		parts = append(parts, "Semantic analysis suggests human writing")
	}

	sd, mean, sentences := sentenceLengthStats(text)
	monotone := sentences >= 3 && sd < 4.0
	flags := make([]string, 0, 3)
	if monotone {
		flags = append(flags, "Monotone: sentence-length variability is unusually low")
	}
	if aiDensity > 0.1 {
		flags = append(flags, "High stock-phrase density")
	}
	if repetitive > 0.05 {
		flags = append(flags, "Repeated report-style openers")
	}

	return Report{
		IsAIGenerated: isAI,
		Confidence:    round3(confidence),
		Scores: map[string]float64{
			ScoreAI:         round3(aiDensity),
			ScoreHuman:      round3(humanDensity),
			ScoreConfidence: round3(confidence),
		},
		Analysis:           strings.Join(parts, ". ") + ".",
		Flags:              flags,
		AIHits:             aiHits,
		HumanHits:          humanHits,
		Monotone:           monotone,
		MeanSentenceLength: mean,
		SentenceLengthSD:   sd,
	}
}

// Groups lists the group names, AI groups first.
func (d *Detector) Groups() []string {
	var ai, human []string
	for name := range d.ai {
		ai = append(ai, name)
	}
	for name := range d.human {
		human = append(human, name)
	}
	sort.Strings(ai)
	sort.Strings(human)
	return append(ai, human...)
}

func countGroups(groups map[string]*phrases.Matcher, text string) map[string]int {
	out := make(map[string]int, len(groups))
	for name, m := range groups {
		out[name] = m.Count(text)
	}
	return out
}

func sum(counts map[string]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

func sentenceLengthStats(text string) (sd float64, mean float64, count int) {
	parts := sentenceEnd.Split(text, -1)
	lengths := make([]float64, 0, len(parts))
	for _, p := range parts {
		n := len(wordPattern.FindAllString(p, -1))
		if n == 0 {
			continue
		}
		lengths = append(lengths, float64(n))
	}
	if len(lengths) == 0 {
		return 0, 0, 0
	}
	var total float64
	for _, l := range lengths {
		total += l
	}
	mean = total / float64(len(lengths))
	var variance float64
	for _, l := range lengths {
		d := l - mean
		variance += d * d
	}
	variance /= float64(len(lengths))
	return math.Sqrt(variance), mean, len(lengths)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
