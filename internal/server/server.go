// Package server exposes the humanizer, detectors, summarizer and history over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"text_humanizer/internal/app"
	"text_humanizer/internal/db"
	"text_humanizer/internal/humanize"
	"text_humanizer/internal/ingest"
	"text_humanizer/internal/llm"
	"text_humanizer/internal/logging"
	"text_humanizer/internal/prompts"
	"text_humanizer/internal/summarize"
	"text_humanizer/internal/tone"
)

const (
	Version = "1.0.0"

	UserHeader = "X-User-ID"

	maxJSONBody   = 1 << 20
	maxUploadBody = 32 << 20
)

type Server struct {
	app    *app.App
	logger logging.Logger
	mux    *http.ServeMux
}

func New(a *app.App, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Nop
	}
	s := &Server{app: a, logger: logger, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux.HandleFunc("GET /health", s.handleLiveness)

	s.mux.HandleFunc("GET /text-humanizer/health", s.handleHealth)
	s.mux.HandleFunc("POST /text-humanizer/humanize", s.handleHumanize)
	s.mux.HandleFunc("POST /text-humanizer/detect-ai", s.handleDetect)
	s.mux.HandleFunc("POST /text-humanizer/detect-ai-semantic", s.handleDetectSemantic)
	s.mux.HandleFunc("GET /text-humanizer/dictionary/stats", s.handleDictionaryStats)

	s.mux.HandleFunc("POST /pdf-summarizer/upload", s.handleUpload)
	s.mux.HandleFunc("POST /pdf-summarizer/summarize", s.handleSummarize)
	s.mux.HandleFunc("POST /pdf-summarizer/key-points", s.handleKeyPoints)
	s.mux.HandleFunc("POST /pdf-summarizer/questions", s.handleQuestions)
	s.mux.HandleFunc("POST /pdf-summarizer/chat", s.handleChat)
	s.mux.HandleFunc("GET /pdf-summarizer/styles", s.handleStyles)

	s.mux.HandleFunc("GET /history", s.handleHistory)
}

// Handler returns the router wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		s.mux.ServeHTTP(rec, r)
		level := logging.LevelInfo
		if rec.status >= http.StatusInternalServerError {
			level = logging.LevelError
		}
		s.logger.Log(level, "HTTP", r.Method+" "+r.URL.Path,
			fmt.Sprintf("status=%d duration=%s", rec.status, time.Since(start).Round(time.Millisecond)))
	})
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Log(logging.LevelInfo, "HTTP", "listening", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Log(logging.LevelInfo, "HTTP", "shutting down", addr)
		return srv.Shutdown(shutdownCtx)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Text Humanizer API",
		"version":  Version,
		"services": []string{"text-humanizer", "pdf-summarizer", "history"},
	})
}

func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Health())
}

func (s *Server) handleDictionaryStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.app.DictionaryStats())
}

func (s *Server) handleHumanize(w http.ResponseWriter, r *http.Request) {
	var req app.HumanizeRequest
	if !s.decode(w, r, &req) {
		return
	}
	req.UserID = userID(r)
	resp, err := s.app.Humanize(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type textRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.app.ValidateText(req.Text); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.app.DetectAIContent(req.Text))
}

func (s *Server) handleDetectSemantic(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.app.ValidateText(req.Text); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.app.DetectSemantic(req.Text))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, fmt.Errorf("%w: multipart field \"file\" is required", app.ErrInvalidInput))
		return
	}
	defer file.Close()
	raw, err := io.ReadAll(file)
	if err != nil {
		s.fail(w, fmt.Errorf("%w: read upload: %v", app.ErrInvalidInput, err))
		return
	}
	doc, err := s.app.Extract(r.Context(), userID(r), header.Filename, raw)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarize.Request
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.app.Summarize(r.Context(), userID(r), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type keyPointsRequest struct {
	Text      string `json:"text"`
	MaxPoints int    `json:"max_points"`
}

func (s *Server) handleKeyPoints(w http.ResponseWriter, r *http.Request) {
	var req keyPointsRequest
	if !s.decode(w, r, &req) {
		return
	}
	points, err := s.app.Summarizer().KeyPoints(r.Context(), req.Text, req.MaxPoints)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"key_points": nonNil(points), "count": len(points)})
}

type questionsRequest struct {
	Text         string `json:"text"`
	NumQuestions int    `json:"num_questions"`
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if !s.decode(w, r, &req) {
		return
	}
	questions, err := s.app.Summarizer().Questions(r.Context(), req.Text, req.NumQuestions)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": nonNil(questions), "count": len(questions)})
}

type chatRequest struct {
	Messages   []prompts.Message `json:"messages"`
	PDFContext string            `json:"pdf_context"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !s.decode(w, r, &req) {
		return
	}
	reply, err := s.app.Summarizer().Chat(r.Context(), req.PDFContext, req.Messages)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (s *Server) handleStyles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"styles": prompts.Styles()})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := db.Filter{UserID: userID(r), Type: q.Get("type")}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.fail(w, fmt.Errorf("%w: limit must be a positive integer", app.ErrInvalidInput))
			return
		}
		f.Limit = n
	}
	rows, err := s.app.History(r.Context(), f)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"interactions": nonNil(rows), "count": len(rows)})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		s.fail(w, fmt.Errorf("%w: malformed JSON body: %v", app.ErrInvalidInput, err))
		return false
	}
	return true
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Log(logging.LevelError, "HTTP", "request failed", err.Error())
	}
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrInvalidInput),
		errors.Is(err, app.ErrTextTooLong),
		errors.Is(err, app.ErrUnknownModel),
		errors.Is(err, tone.ErrUnknownTone),
		errors.Is(err, summarize.ErrEmptyText),
		errors.Is(err, summarize.ErrUnknownStyle),
		errors.Is(err, summarize.ErrNoMessages),
		errors.Is(err, ingest.ErrUnsupportedFile),
		errors.Is(err, ingest.ErrInvalidPDF),
		errors.Is(err, ingest.ErrNoText):
		return http.StatusBadRequest
	case errors.Is(err, llm.ErrUnavailable),
		errors.Is(err, app.ErrHistoryDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, humanize.ErrUnchanged):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func userID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(UserHeader)); id != "" {
		return id
	}
	return app.Anonymous
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
