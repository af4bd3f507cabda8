// Package logging implements the Log(level, stage, message, detail) sink used across the
// humanizer packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	LevelDebug    = "DEBUG"
	LevelInfo     = "INFO"
	LevelWarn     = "WARN"
	LevelError    = "ERROR"
	LevelAnalysis = "ANALYSIS"
)

type Logger interface {
	Log(level, stage, message, detail string)
}

type Line struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (l Line) String() string {
	if l.Detail == "" {
		return fmt.Sprintf("[%s] [%s] [%s] %s", l.Time, l.Level, l.Stage, l.Message)
	}
	return fmt.Sprintf("[%s] [%s] [%s] %s | %s", l.Time, l.Level, l.Stage, l.Message, l.Detail)
}

// Archive writes each line to w and keeps the most recent ones in memory.
type Archive struct {
	mu    sync.Mutex
	w     io.Writer
	debug bool
	keep  int
	lines []Line
	now   func() time.Time
}

// NewArchive drops DEBUG lines unless debug is set. keep bounds the in-memory tail.
func NewArchive(w io.Writer, keep int, debug bool) *Archive {
	if keep <= 0 {
		keep = 200
	}
	return &Archive{w: w, debug: debug, keep: keep, now: time.Now}
}

// OpenFile appends to path, creating parent directories as needed.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func (a *Archive) Log(level, stage, message, detail string) {
	if level == LevelDebug && !a.debug {
		return
	}
	line := Line{
		Time:    a.now().Format("15:04:05.000"),
		Level:   level,
		Stage:   stage,
		Message: message,
		Detail:  detail,
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lines = append(a.lines, line)
	if len(a.lines) > a.keep {
		a.lines = append([]Line(nil), a.lines[len(a.lines)-a.keep:]...)
	}
	if a.w != nil {
		fmt.Fprintln(a.w, line.String())
	}
}

func (a *Archive) Lines() []Line {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Line(nil), a.lines...)
}

type Func func(level, stage, message, detail string)

func (f Func) Log(level, stage, message, detail string) {
	if f != nil {
		f(level, stage, message, detail)
	}
}

type nop struct{}

func (nop) Log(string, string, string, string) {}

var Nop Logger = nop{}
