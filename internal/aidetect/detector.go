package aidetect

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

const (
	ScorePerplexity = "perplexity"
	ScoreRepetition = "repetition"
	ScoreFormality  = "formality"
	ScoreVariety    = "sentence_variety"
	ScoreCoherence  = "semantic_coherence"
	ScoreDiversity  = "lexical_diversity"
	ScorePatterns   = "ai_pattern_density"
)

// ScoreNames lists the feature keys present in every Result.
var ScoreNames = []string{
	ScorePerplexity, ScoreRepetition, ScoreFormality, ScoreVariety,
	ScoreCoherence, ScoreDiversity, ScorePatterns,
}

type ErrorEntry struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type SpanTrace struct {
	Name       string `json:"name"`
	DurationMs int64  `json:"duration_ms"`
	Status     string `json:"status"`
}

type Result struct {
	IsAIGenerated bool               `json:"is_ai_generated"`
	Confidence    float64            `json:"confidence"`
	Scores        map[string]float64 `json:"scores"`
	Analysis      string             `json:"analysis"`

	Errors []ErrorEntry `json:"-"`
	Traces []SpanTrace  `json:"-"`
}

type Config struct {
	WeightPerplexity float64
	WeightRepetition float64
	WeightFormality  float64
	WeightVariety    float64
	WeightCoherence  float64
	WeightDiversity  float64
	WeightPatterns   float64

	ThresholdShort  float64
	ThresholdMedium float64
	ThresholdLong   float64
	ShortWords      int
	MediumWords     int

	// Each signal above its cutoff lowers the decision threshold by its step.
	PatternCutoff    float64
	PatternStep      float64
	FormalityCutoff  float64
	FormalityStep    float64
	RepetitionCutoff float64
	RepetitionStep   float64
}

type Logger interface {
	Log(level, stage, message, detail string)
}

func DefaultConfig() Config {
	return Config{
		WeightPerplexity: getenvFloat("AI_WEIGHT_PERPLEXITY", 0.15),
		WeightRepetition: getenvFloat("AI_WEIGHT_REPETITION", 0.10),
		WeightFormality:  getenvFloat("AI_WEIGHT_FORMALITY", 0.25),
		WeightVariety:    getenvFloat("AI_WEIGHT_VARIETY", 0.10),
		WeightCoherence:  getenvFloat("AI_WEIGHT_COHERENCE", 0.05),
		WeightDiversity:  getenvFloat("AI_WEIGHT_DIVERSITY", 0.05),
		WeightPatterns:   getenvFloat("AI_WEIGHT_PATTERNS", 0.30),

		ThresholdShort:  getenvFloat("AI_THRESHOLD_SHORT", 0.65),
		ThresholdMedium: getenvFloat("AI_THRESHOLD_MEDIUM", 0.62),
		ThresholdLong:   getenvFloat("AI_THRESHOLD_LONG", 0.60),
		ShortWords:      getenvInt("AI_SHORT_WORDS", 20),
		MediumWords:     getenvInt("AI_MEDIUM_WORDS", 100),

		PatternCutoff:    0.3,
		PatternStep:      0.05,
		FormalityCutoff:  0.7,
		FormalityStep:    0.05,
		RepetitionCutoff: 0.5,
		RepetitionStep:   0.03,
	}
}

func (c Config) weightSum() float64 {
	return c.WeightPerplexity + c.WeightRepetition + c.WeightFormality + c.WeightVariety +
		c.WeightCoherence + c.WeightDiversity + c.WeightPatterns
}

// Validate requires non-negative weights summing to one.
func (c Config) Validate() error {
	for name, w := range map[string]float64{
		ScorePerplexity: c.WeightPerplexity, ScoreRepetition: c.WeightRepetition,
		ScoreFormality: c.WeightFormality, ScoreVariety: c.WeightVariety,
		ScoreCoherence: c.WeightCoherence, ScoreDiversity: c.WeightDiversity,
		ScorePatterns: c.WeightPatterns,
	} {
		if w < 0 {
			return fmt.Errorf("validate detector config: weight %s is negative", name)
		}
	}
	if sum := c.weightSum(); math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("validate detector config: weights sum to %.4f, want 1", sum)
	}
	if c.ShortWords > c.MediumWords {
		return fmt.Errorf("validate detector config: short word limit %d exceeds medium limit %d", c.ShortWords, c.MediumWords)
	}
	return nil
}

type features struct {
	words      []string
	sentences  []string
	perplexity float64
	rawPPL     float64
	repetition float64
	formality  float64
	variety    float64
	coherence  float64
	diversity  float64
	patterns   float64
}

var sentenceEnd = regexp.MustCompile(`[.!?]+`)
var punctMark = regexp.MustCompile(`[,.!?;:]`)

// Detect scores text with DefaultConfig and no logger.
func Detect(text string) Result {
	return Analyze(text, DefaultConfig(), nil)
}

// Analyze never panics. A feature that fails is reported in Errors and contributes zero.
func Analyze(text string, cfg Config, logger Logger) (res Result) {
	res = Result{Scores: zeroScores(), Errors: []ErrorEntry{}, Traces: []SpanTrace{}}
	defer func() {
		if r := recover(); r != nil {
			res = Result{Scores: zeroScores(), Analysis: "Analysis unavailable"}
			logf(logger, "ERROR", fmt.Sprintf("detector panic: %v", r), "")
		}
	}()

	if strings.TrimSpace(text) == "" {
		res.Analysis = "Empty text provided"
		return res
	}

	var f features
	withSpan(&res, "normalize_text", func() error {
		normalized := strings.ReplaceAll(norm.NFKC.String(text), "’", "'")
		f.words = strings.Fields(strings.ToLower(normalized))
		f.sentences = splitSentences(normalized)
		text = normalized
		return nil
	})
	withSpan(&res, ScorePerplexity, func() error {
		f.rawPPL = perplexity(f.words)
		f.perplexity = math.Max(0, 1-f.rawPPL/100)
		return nil
	})
	withSpan(&res, ScoreRepetition, func() error {
		f.repetition = repetition(f.words, f.sentences)
		return nil
	})
	withSpan(&res, ScoreFormality, func() error {
		f.formality = formality(text, len(f.words))
		return nil
	})
	withSpan(&res, ScoreVariety, func() error {
		f.variety = sentenceVariety(f.sentences)
		return nil
	})
	withSpan(&res, ScoreCoherence, func() error {
		f.coherence = coherence(f.sentences)
		return nil
	})
	withSpan(&res, ScoreDiversity, func() error {
		f.diversity = lexicalDiversity(f.words)
		return nil
	})
	withSpan(&res, ScorePatterns, func() error {
		f.patterns = patternDensity(text, len(f.words))
		return nil
	})

	confidence := cfg.WeightPerplexity*f.perplexity +
		cfg.WeightRepetition*f.repetition +
		cfg.WeightFormality*f.formality +
		cfg.WeightVariety*(1-f.variety) +
		cfg.WeightCoherence*f.coherence +
		cfg.WeightDiversity*(1-f.diversity) +
		cfg.WeightPatterns*f.patterns
	confidence = clamp01(confidence)
	threshold := decisionThreshold(cfg, f)

	res.IsAIGenerated = confidence > threshold
	res.Confidence = round3(confidence)
	res.Scores = map[string]float64{
		ScorePerplexity: round3(f.perplexity),
		ScoreRepetition: round3(f.repetition),
		ScoreFormality:  round3(f.formality),
		ScoreVariety:    round3(f.variety),
		ScoreCoherence:  round3(f.coherence),
		ScoreDiversity:  round3(f.diversity),
		ScorePatterns:   round3(f.patterns),
	}
	res.Analysis = explain(confidence, f)
	logf(logger, "DEBUG", "detection", fmt.Sprintf("confidence=%.3f threshold=%.3f words=%d", confidence, threshold, len(f.words)))
	return res
}

func decisionThreshold(cfg Config, f features) float64 {
	n := len(f.words)
	threshold := cfg.ThresholdLong
	switch {
	case n < cfg.ShortWords:
		threshold = cfg.ThresholdShort
	case n < cfg.MediumWords:
		threshold = cfg.ThresholdMedium
	}
	if f.patterns > cfg.PatternCutoff {
		threshold -= cfg.PatternStep
	}
	if f.formality > cfg.FormalityCutoff {
		threshold -= cfg.FormalityStep
	}
	if f.repetition > cfg.RepetitionCutoff {
		threshold -= cfg.RepetitionStep
	}
	return threshold
}

// perplexity of a trigram model fitted on the text itself, add-one smoothed over the vocabulary.
func perplexity(words []string) float64 {
	if len(words) < 3 {
		return 0
	}
	vocab := map[string]struct{}{}
	bigrams := map[string]int{}
	trigrams := map[string]int{}
	for i, w := range words {
		vocab[w] = struct{}{}
		if i+1 < len(words) {
			bigrams[w+" "+words[i+1]]++
		}
		if i+2 < len(words) {
			trigrams[w+" "+words[i+1]+" "+words[i+2]]++
		}
	}
	v := float64(len(vocab))
	logSum := 0.0
	n := 0
	for i := 0; i+2 < len(words); i++ {
		tri := float64(trigrams[words[i]+" "+words[i+1]+" "+words[i+2]])
		bi := float64(bigrams[words[i]+" "+words[i+1]])
		logSum += math.Log((tri + 1) / (bi + v))
		n++
	}
	return math.Exp(-logSum / float64(n))
}

func repetition(words, sentences []string) float64 {
	if len(words) < 10 {
		return 0
	}
	wordRep := 1 - float64(uniqueCount(words))/float64(len(words))

	phraseRep := 0.0
	for n := 2; n <= 4; n++ {
		grams := ngrams(words, n)
		if len(grams) == 0 {
			continue
		}
		phraseRep += (1 - float64(uniqueCount(grams))/float64(len(grams))) / 3
	}

	consecutive := 0
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] {
			consecutive++
		}
	}
	consecRep := float64(consecutive) / float64(max(1, len(words)-1))

	return 0.4*wordRep + 0.3*phraseRep + 0.2*consecRep + 0.1*structuralRepetition(sentences)
}

func structuralRepetition(sentences []string) float64 {
	sigs := signatures(sentences)
	if len(sigs) <= 2 {
		return 0
	}
	return 1 - float64(uniqueCount(sigs))/float64(len(sigs))
}

// signatures abstracts the first five words of each sentence longer than three words.
func signatures(sentences []string) []string {
	var out []string
	for _, s := range sentences {
		words := strings.Fields(strings.ToLower(s))
		if len(words) <= 3 {
			continue
		}
		limit := min(5, len(words))
		parts := make([]string, 0, limit)
		for _, w := range words[:limit] {
			switch w {
			case "the", "a", "an":
				parts = append(parts, "DET")
			case "is", "are", "was", "were", "be", "been":
				parts = append(parts, "BE")
			case "and", "or", "but", "so":
				parts = append(parts, "CONJ")
			default:
				parts = append(parts, "WORD")
			}
		}
		out = append(out, strings.Join(parts, " "))
	}
	return out
}

func formality(text string, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	formal := indicators.formal.Count(text) + indicators.academic.Count(text) + indicators.complex.Count(text)
	informal := indicators.contract.Count(text) + indicators.informal.Count(text) +
		indicators.emotional.Count(text) + indicators.filler.Count(text)
	return clamp01(float64(formal-informal)/float64(wordCount) + 0.5)
}

func sentenceVariety(sentences []string) float64 {
	if len(sentences) < 2 {
		return 0.5
	}
	lengths := make([]float64, len(sentences))
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
	}
	lengthCV := coefficientOfVariation(lengths)

	structVariety := 0.0
	punctVariety := 0.0
	if len(sentences) > 2 {
		if sigs := signatures(sentences); len(sigs) > 0 {
			structVariety = float64(uniqueCount(sigs)) / float64(len(sigs))
		}
		counts := make([]float64, len(sentences))
		for i, s := range sentences {
			counts[i] = float64(len(punctMark.FindAllString(s, -1)))
		}
		punctVariety = coefficientOfVariation(counts)
	}
	return math.Min(1, math.Min(1, lengthCV)*0.5+structVariety*0.3+punctVariety*0.2)
}

// coherence is the mean word-set overlap of consecutive sentences.
func coherence(sentences []string) float64 {
	if len(sentences) < 2 {
		return 0.5
	}
	total := 0.0
	pairs := 0
	for i := 1; i < len(sentences); i++ {
		a := wordSet(sentences[i-1])
		b := wordSet(sentences[i])
		if len(a) == 0 || len(b) == 0 {
			continue
		}
		total += jaccard(a, b)
		pairs++
	}
	if pairs == 0 {
		return 0.5
	}
	return total / float64(pairs)
}

// lexicalDiversity blends type-token ratio with Yule's K.
func lexicalDiversity(words []string) float64 {
	if len(words) < 10 {
		return 0.5
	}
	freq := map[string]int{}
	for _, w := range words {
		freq[w]++
	}
	n := float64(len(words))
	ttr := float64(len(freq)) / n
	sum := 0.0
	for _, c := range freq {
		sum += float64(c * (c - 1))
	}
	k := 10000 * sum / (n * (n - 1))
	return 0.6*ttr + 0.4*math.Max(0, 1-k/100)
}

func patternDensity(text string, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	return math.Min(1, float64(indicators.stock.Count(text))/float64(wordCount)*10)
}

func explain(confidence float64, f features) string {
	level := "unlikely"
	switch {
	case confidence > 0.9:
		level = "very highly likely"
	case confidence > 0.8:
		level = "highly likely"
	case confidence > 0.7:
		level = "likely"
	case confidence > 0.55:
		level = "possibly"
	}

	var parts []string
	add := func(s string) { parts = append(parts, s) }

	switch {
	case f.formality > 0.75:
		add("uses highly formal language and academic vocabulary")
	case f.formality > 0.6:
		add("shows formal language patterns")
	case f.formality < 0.3:
		add("uses casual and informal language")
	}
	switch {
	case f.repetition > 0.7:
		add("contains significant repetitive patterns")
	case f.repetition > 0.5:
		add("shows some repetition")
	case f.repetition < 0.2:
		add("shows natural word variety")
	}
	switch {
	case f.variety < 0.25:
		add("has very uniform sentence structures")
	case f.variety < 0.45:
		add("shows limited sentence variety")
	case f.variety > 0.7:
		add("shows natural sentence variety")
	}
	switch {
	case f.rawPPL < 25:
		add("uses highly predictable word combinations")
	case f.rawPPL < 40:
		add("shows some word predictability")
	case f.rawPPL > 60:
		add("shows natural word unpredictability")
	}
	switch {
	case f.coherence > 0.7:
		add("shows high semantic coherence")
	case f.coherence < 0.3:
		add("shows natural topic shifts")
	}
	switch {
	case f.diversity < 0.3:
		add("uses limited vocabulary")
	case f.diversity > 0.7:
		add("shows rich vocabulary diversity")
	}
	switch {
	case f.patterns > 0.5:
		add("contains many AI-characteristic stock phrases")
	case f.patterns > 0.2:
		add("contains some AI-characteristic phrases")
	}
	if len(parts) == 0 {
		add("shows mixed language patterns")
	}
	return fmt.Sprintf("Text is %s AI-generated. Analysis: %s.", level, strings.Join(parts, ", "))
}

func withSpan(res *Result, name string, fn func() error) {
	start := time.Now()
	status := "ok"
	if err := fn(); err != nil {
		status = "error"
		res.Errors = append(res.Errors, ErrorEntry{
			Stage:   name,
			Message: err.Error(),
			Type:    "exception",
		})
	}
	res.Traces = append(res.Traces, SpanTrace{
		Name:       name,
		DurationMs: time.Since(start).Milliseconds(),
		Status:     status,
	})
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range sentenceEnd.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func ngrams(words []string, n int) []string {
	if len(words) < n {
		return nil
	}
	out := make([]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		out = append(out, strings.Join(words[i:i+n], " "))
	}
	return out
}

func uniqueCount(items []string) int {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[it] = struct{}{}
	}
	return len(seen)
}

func wordSet(s string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(s)) {
		out[w] = struct{}{}
	}
	return out
}

func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// meanStd uses the sample standard deviation.
func meanStd(values []float64) (mean, sd float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if len(values) < 2 {
		return mean, 0
	}
	for _, v := range values {
		d := v - mean
		sd += d * d
	}
	sd = math.Sqrt(sd / float64(len(values)-1))
	return mean, sd
}

func coefficientOfVariation(values []float64) float64 {
	mean, sd := meanStd(values)
	if mean == 0 {
		return 0
	}
	return sd / mean
}

func zeroScores() map[string]float64 {
	out := make(map[string]float64, len(ScoreNames))
	for _, k := range ScoreNames {
		out[k] = 0
	}
	return out
}

func logf(logger Logger, level, message, detail string) {
	if logger != nil {
		logger.Log(level, "DETECT", message, detail)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func getenvInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getenvFloat(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
