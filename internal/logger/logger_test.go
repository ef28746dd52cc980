package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesToFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "nested", "dash.log")
	cfg.Compress = false

	log, err := New(cfg)
	require.NoError(t, err)

	log.WithComponent("test").Info("Holding added", zap.String("ticker", "NFLX"))
	log.Debug("hidden at info level")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Holding added"`)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.NotContains(t, string(data), "hidden at info level")

	entries := log.Recent().Entries(0)
	require.Len(t, entries, 1)
	assert.Equal(t, "Holding added", entries[0].Message)
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New(&Config{})
	assert.Error(t, err)
}

func TestRecentRingBehavior(t *testing.T) {
	r := NewRecent(3)
	for i := 0; i < 5; i++ {
		r.Add(Entry{Level: zapcore.InfoLevel, Message: fmt.Sprintf("msg %d", i)})
	}

	entries := r.Entries(0)
	require.Len(t, entries, 3)
	assert.Equal(t, "msg 2", entries[0].Message)
	assert.Equal(t, "msg 4", entries[2].Message)

	last := r.Entries(2)
	require.Len(t, last, 2)
	assert.Equal(t, "msg 3", last[0].Message)
	assert.Equal(t, uint64(5), r.Total())
}

func TestRecentConcurrentAccess(t *testing.T) {
	r := NewRecent(10)
	var wg sync.WaitGroup

	wg.Add(4)
	for i := 0; i < 4; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				r.Add(Entry{Message: fmt.Sprintf("%d-%d", id, j)})
				_ = r.Entries(5)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, uint64(100), r.Total())
	assert.Len(t, r.Entries(0), 10)
}

func TestRecentCoreLevel(t *testing.T) {
	r := NewRecent(5)
	log := zap.New(r.Core(zapcore.WarnLevel))

	log.Info("dropped")
	log.Warn("kept")

	entries := r.Entries(0)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	log := CreatePrettyLogger(&buf, false)
	log.Info("Dashboard started")
	log.Debug("not shown")

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "Dashboard started")
	assert.NotContains(t, out, "not shown")
}
