// internal/logger/recent.go
package logger

import (
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// Entry is a log line kept for display.
type Entry struct {
	Time    time.Time
	Level   zapcore.Level
	Message string
}

// Recent is a fixed-size ring of the latest log entries.
type Recent struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	wrapped bool
	total   uint64
}

// NewRecent creates a ring holding at most size entries.
func NewRecent(size int) *Recent {
	if size <= 0 {
		size = 1
	}
	return &Recent{entries: make([]Entry, size)}
}

// Add stores an entry, overwriting the oldest one when full.
func (r *Recent) Add(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = entry
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.wrapped = true
	}
	r.total++
}

// Entries returns up to limit entries, oldest first. limit <= 0 returns all.
func (r *Recent) Entries(limit int) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := r.next
	start := 0
	if r.wrapped {
		count = len(r.entries)
		start = r.next
	}

	out := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, r.entries[(start+i)%len(r.entries)])
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// Total returns how many entries were ever added.
func (r *Recent) Total() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

// Core returns a zapcore.Core that records messages at or above level.
func (r *Recent) Core(level zapcore.LevelEnabler) zapcore.Core {
	return &recentCore{LevelEnabler: level, recent: r}
}

// recentCore keeps only the message and level; fields are dropped.
type recentCore struct {
	zapcore.LevelEnabler
	recent *Recent
}

func (c *recentCore) With([]zapcore.Field) zapcore.Core {
	return c
}

func (c *recentCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *recentCore) Write(entry zapcore.Entry, _ []zapcore.Field) error {
	c.recent.Add(Entry{Time: entry.Time, Level: entry.Level, Message: entry.Message})
	return nil
}

func (c *recentCore) Sync() error {
	return nil
}
