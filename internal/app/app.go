// Package app wires the humanizer, detectors, summarizer and history store into one
// application context shared by the HTTP server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"text_humanizer/internal/aidetect"
	"text_humanizer/internal/config"
	"text_humanizer/internal/db"
	"text_humanizer/internal/grammar"
	"text_humanizer/internal/humanize"
	"text_humanizer/internal/ingest"
	"text_humanizer/internal/lexicon"
	"text_humanizer/internal/llm"
	"text_humanizer/internal/logging"
	"text_humanizer/internal/register"
	"text_humanizer/internal/similarity"
	"text_humanizer/internal/slop"
	"text_humanizer/internal/summarize"
	"text_humanizer/internal/tone"
	"text_humanizer/internal/workspace"
)

const (
	ModelRegex  = "regex"
	ModelGemini = "gemini"

	Anonymous = "anonymous"
)

type App struct {
	cfg    config.Config
	logger logging.Logger

	store      *lexicon.Store
	dictSource string
	oracle     *similarity.Oracle
	pipeline   *humanize.Pipeline
	rewriter   *humanize.LLMHumanizer
	gen        llm.Generator
	detectCfg  aidetect.Config
	semantic   *slop.Detector
	summarizer *summarize.Service
	history    *db.Repository
}

type Option func(*App)

func WithLogger(l logging.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithGenerator enables the model-backed humanizer, summaries, key points, questions and chat.
func WithGenerator(g llm.Generator) Option {
	return func(a *App) { a.gen = g }
}

func WithHistory(r *db.Repository) Option {
	return func(a *App) { a.history = r }
}

func WithStore(s *lexicon.Store) Option {
	return func(a *App) {
		if s != nil {
			a.store = s
			a.dictSource = "custom"
		}
	}
}

// New builds every local component. Missing dictionary, preference or graph files degrade
// to built-in data with a WARN line; only an invalid detector configuration is fatal.
func New(cfg config.Config, opts ...Option) (*App, error) {
	a := &App{cfg: cfg, logger: logging.Nop}
	for _, opt := range opts {
		opt(a)
	}

	if a.store == nil {
		loaded := lexicon.LoadJSON(cfg.DictionaryPath)
		if loaded.Degraded {
			a.logger.Log(logging.LevelWarn, "LEXICON", "using built-in dictionary", loaded.Reason)
		}
		a.store = loaded.Store
		a.dictSource = loaded.Source
	}

	prefs := register.BuiltinPreferences()
	if cfg.PreferencesPath != "" {
		p, err := register.LoadPreferencesYAML(cfg.PreferencesPath)
		if err != nil {
			a.logger.Log(logging.LevelWarn, "LEXICON", "using built-in register preferences", err.Error())
		} else {
			prefs = p
		}
	}

	a.oracle = similarity.New(a.loadGraph())
	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	a.pipeline = humanize.NewPipeline(a.store, humanize.NewSelector(prefs, a.oracle, rng), a.logger)
	a.rewriter = humanize.NewLLMHumanizer(a.gen, a.logger)
	a.summarizer = summarize.NewService(a.gen, a.logger)

	a.detectCfg = aidetect.DefaultConfig()
	if err := a.detectCfg.Validate(); err != nil {
		return nil, err
	}
	semantic, err := slop.New()
	if err != nil {
		return nil, fmt.Errorf("load semantic patterns: %w", err)
	}
	a.semantic = semantic

	a.logger.Log(logging.LevelInfo, "BOOT", "application ready",
		fmt.Sprintf("dictionary=%s words=%d similarity=%s model=%t history=%t",
			a.dictSource, a.store.Len(), a.oracle.Mode(), a.gen != nil, a.history != nil))
	return a, nil
}

func (a *App) loadGraph() similarity.Graph {
	if a.cfg.GraphDisabled {
		return nil
	}
	var (
		g   *similarity.Network
		err error
	)
	if a.cfg.GraphPath != "" {
		g, err = similarity.LoadGraphYAML(a.cfg.GraphPath)
	} else {
		g, err = similarity.DefaultGraph()
	}
	if err != nil {
		a.logger.Log(logging.LevelWarn, "SIMILARITY", "knowledge graph unavailable, using character overlap", err.Error())
		return nil
	}
	return g
}

// OpenHistory opens the configured interaction store. An empty driver disables history.
func OpenHistory(ctx context.Context, cfg config.Config) (*db.Repository, error) {
	if cfg.HistoryDriver == "" {
		return nil, nil
	}
	conn, err := db.Open(ctx, cfg.HistoryDriver, cfg.HistoryDSN)
	if err != nil {
		return nil, err
	}
	return db.NewRepository(conn, cfg.HistoryDriver), nil
}

// NewGenerator returns nil without error when no API key is configured.
func NewGenerator(ctx context.Context, cfg config.Config) (llm.Generator, error) {
	g, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if errors.Is(err, llm.ErrUnavailable) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (a *App) Close() error {
	if a.history != nil {
		return a.history.Close()
	}
	return nil
}

func (a *App) Config() config.Config {
	return a.cfg
}

// HumanizeText runs substitution, the tone table and grammar cleanup. It never fails: on any
// degradation the input comes back unchanged. An unknown tone is treated as casual. Input with
// no visible characters comes back as the empty string.
func (a *App) HumanizeText(ctx context.Context, text, toneName string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	t, err := tone.Parse(toneName)
	if err != nil {
		a.logger.Log(logging.LevelWarn, "HUMANIZE", "unknown tone, using casual", err.Error())
		t = tone.Casual
	}
	out := a.pipeline.Humanize(ctx, text, string(t))
	if out.Degraded {
		a.logger.Log(logging.LevelWarn, "HUMANIZE", "returning input unchanged", out.Reason)
		return text
	}
	if strings.TrimSpace(out.Text) == "" {
		return text
	}
	return humanize.Finish(grammar.Normalize(tone.Apply(out.Text, t)))
}

func (a *App) DetectAIContent(text string) aidetect.Result {
	return aidetect.Analyze(prepare(text), a.detectCfg, a.logger)
}

func (a *App) DetectSemantic(text string) slop.Report {
	return a.semantic.Analyze(prepare(text))
}

type HumanizeRequest struct {
	Text   string `json:"text"`
	Tone   string `json:"tone"`
	Model  string `json:"model"`
	UserID string `json:"-"`
}

type HumanizeResponse struct {
	HumanizedText  string          `json:"humanized_text"`
	Tone           string          `json:"tone"`
	Model          string          `json:"model"`
	ProcessingTime float64         `json:"processing_time"`
	AIDetection    aidetect.Result `json:"ai_detection"`
}

// ValidateText applies the configured length cap to trimmed, non-empty text.
func (a *App) ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text must not be empty", ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(text); n > a.cfg.MaxLength {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrTextTooLong, n, a.cfg.MaxLength)
	}
	return nil
}

// Humanize validates req, rewrites the text with the chosen model and records the interaction.
// Detection runs on the original text.
func (a *App) Humanize(ctx context.Context, req HumanizeRequest) (HumanizeResponse, error) {
	start := time.Now()
	if err := a.ValidateText(req.Text); err != nil {
		return HumanizeResponse{}, err
	}
	if strings.TrimSpace(req.Tone) == "" {
		req.Tone = string(tone.Casual)
	}
	t, err := tone.Parse(req.Tone)
	if err != nil {
		return HumanizeResponse{}, err
	}
	model := strings.ToLower(strings.TrimSpace(req.Model))
	if model == "" {
		model = ModelRegex
	}

	var humanized string
	switch model {
	case ModelRegex:
		humanized = a.HumanizeText(ctx, req.Text, string(t))
	case ModelGemini:
		rewritten, err := a.rewriter.Humanize(ctx, req.Text)
		if err != nil {
			return HumanizeResponse{}, fmt.Errorf("humanize with %s: %w", model, err)
		}
		humanized = humanize.Finish(grammar.Normalize(tone.Apply(rewritten, t)))
	default:
		return HumanizeResponse{}, fmt.Errorf("%w: %q", ErrUnknownModel, req.Model)
	}

	resp := HumanizeResponse{
		HumanizedText:  humanized,
		Tone:           string(t),
		Model:          model,
		AIDetection:    a.DetectAIContent(req.Text),
		ProcessingTime: time.Since(start).Seconds(),
	}
	a.record(ctx, db.Interaction{
		UserID:     req.UserID,
		Type:       db.TypeHumanize,
		InputText:  req.Text,
		OutputText: humanized,
		Tone:       string(t),
	})
	return resp, nil
}

// Extract pulls text from an uploaded document, files it in the workspace when a data
// directory is configured, and records the interaction.
func (a *App) Extract(ctx context.Context, userID, filename string, raw []byte) (*ingest.Document, error) {
	doc, err := ingest.Extract(raw, filename)
	if err != nil {
		return nil, err
	}
	if a.cfg.DataDir != "" {
		a.storeUpload(filename, raw, doc)
	}
	a.record(ctx, db.Interaction{
		UserID:        userID,
		Type:          db.TypeExtract,
		InputFilename: filename,
		OutputText:    doc.Text,
	})
	return doc, nil
}

func (a *App) storeUpload(filename string, raw []byte, doc *ingest.Document) {
	up, err := workspace.StoreUpload(a.cfg.DataDir, filename, raw)
	if err == nil {
		err = up.SaveText(doc.Text)
	}
	if err == nil {
		err = up.SaveExtraction(workspace.Extraction{
			Filename:   doc.Info.Filename,
			Pages:      doc.Info.Pages,
			SizeBytes:  doc.Info.SizeBytes,
			Method:     doc.Info.Method,
			TextLength: doc.Info.TextLength,
		})
	}
	if err != nil {
		a.logger.Log(logging.LevelWarn, "WORKSPACE", "upload not stored", err.Error())
	}
}

func (a *App) Summarize(ctx context.Context, userID string, req summarize.Request) (summarize.Summary, error) {
	out, err := a.summarizer.Summarize(ctx, req)
	if err != nil {
		return out, err
	}
	a.record(ctx, db.Interaction{
		UserID:     userID,
		Type:       db.TypeSummarize,
		InputText:  req.Text,
		OutputText: out.Summary,
		Tone:       out.Style,
	})
	return out, nil
}

func (a *App) Summarizer() *summarize.Service {
	return a.summarizer
}

func (a *App) History(ctx context.Context, f db.Filter) ([]db.Interaction, error) {
	if a.history == nil {
		return nil, ErrHistoryDisabled
	}
	return a.history.List(ctx, f)
}

func (a *App) DictionaryStats() lexicon.Stats {
	return a.store.Stats(humanize.RuleCount())
}

type Health struct {
	Status         string        `json:"status"`
	GraphLoaded    bool          `json:"wordnet_loaded"`
	TokenizerMode  string        `json:"tokenizer_mode"`
	Similarity     string        `json:"similarity_mode"`
	CacheSize      int           `json:"similarity_cache_size"`
	Dictionary     lexicon.Stats `json:"dictionary"`
	DictionaryFrom string        `json:"dictionary_source"`
	ModelAvailable bool          `json:"model_available"`
	HistoryEnabled bool          `json:"history_enabled"`
}

func (a *App) Health() Health {
	return Health{
		Status:         "healthy",
		GraphLoaded:    a.oracle.HasGraph(),
		TokenizerMode:  "rule_based",
		Similarity:     a.oracle.Mode(),
		CacheSize:      a.oracle.CacheSize(),
		Dictionary:     a.DictionaryStats(),
		DictionaryFrom: a.dictSource,
		ModelAvailable: a.gen != nil,
		HistoryEnabled: a.history != nil,
	}
}

// record is best effort: a failed insert is logged and the request still succeeds.
func (a *App) record(ctx context.Context, in db.Interaction) {
	if a.history == nil {
		return
	}
	if strings.TrimSpace(in.UserID) == "" {
		in.UserID = Anonymous
	}
	if _, err := a.history.Record(ctx, in); err != nil {
		a.logger.Log(logging.LevelWarn, "HISTORY", "interaction not recorded", err.Error())
	}
}

// prepare folds compatibility forms and curly apostrophes before scoring.
func prepare(text string) string {
	return strings.ReplaceAll(norm.NFKC.String(text), "’", "'")
}
