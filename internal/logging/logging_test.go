package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedArchive(buf *bytes.Buffer, keep int, debug bool) *Archive {
	a := NewArchive(buf, keep, debug)
	a.now = func() time.Time { return time.Date(2025, 1, 2, 9, 4, 5, 123_000_000, time.UTC) }
	return a
}

func TestArchiveFormat(t *testing.T) {
	var buf bytes.Buffer
	a := fixedArchive(&buf, 10, false)
	a.Log(LevelInfo, "BOOT", "ready", "addr=:8000")
	a.Log(LevelWarn, "LEXICON", "fallback", "")

	assert.Equal(t, "[09:04:05.123] [INFO] [BOOT] ready | addr=:8000\n[09:04:05.123] [WARN] [LEXICON] fallback\n", buf.String())
}

func TestArchiveDropsDebugUnlessEnabled(t *testing.T) {
	var quiet, loud bytes.Buffer
	fixedArchive(&quiet, 10, false).Log(LevelDebug, "HUMANIZE", "substitution", "a -> b")
	fixedArchive(&loud, 10, true).Log(LevelDebug, "HUMANIZE", "substitution", "a -> b")
	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "[DEBUG] [HUMANIZE] substitution | a -> b")
}

func TestArchiveKeepsTail(t *testing.T) {
	a := NewArchive(nil, 2, false)
	for _, m := range []string{"one", "two", "three"} {
		a.Log(LevelInfo, "TEST", m, "")
	}
	lines := a.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "two", lines[0].Message)
	assert.Equal(t, "three", lines[1].Message)
}

func TestArchiveConcurrent(t *testing.T) {
	var buf bytes.Buffer
	a := NewArchive(&buf, 1000, false)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Log(LevelInfo, "HTTP", "request", "")
		}()
	}
	wg.Wait()
	assert.Len(t, a.Lines(), 50)
	assert.Equal(t, 50, strings.Count(buf.String(), "\n"))
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "session.log")
	for i := 0; i < 2; i++ {
		f, err := OpenFile(path)
		require.NoError(t, err)
		NewArchive(f, 0, false).Log(LevelInfo, "BOOT", "start", "")
		require.NoError(t, f.Close())
	}
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(raw), "[INFO] [BOOT] start"))
}

func TestFuncAndNop(t *testing.T) {
	var got []string
	var l Logger = Func(func(level, stage, message, detail string) {
		got = append(got, level+" "+stage+" "+message)
	})
	l.Log(LevelError, "DETECT", "boom", "")
	assert.Equal(t, []string{"ERROR DETECT boom"}, got)

	Func(nil).Log(LevelInfo, "X", "y", "")
	Nop.Log(LevelInfo, "X", "y", "")
}
