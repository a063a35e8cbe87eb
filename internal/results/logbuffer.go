package results

import (
	"fmt"
	"sync"
)

// LogLine is one formatted entry in the Log buffer.
type LogLine struct {
	Date        string
	Level       string
	Description string
}

// String renders the line in the original's on-disk and in-memory format:
// "date|level|description".
func (l LogLine) String() string {
	return fmt.Sprintf("%s|%s|%s", l.Date, l.Level, l.Description)
}

// LogBuffer is an append-only buffer of formatted log lines, supporting
// both a full drain and a "since last peek" incremental drain (spec §4.6,
// used by the UI background task's per-tick incremental log push, §4.7).
//
// Unlike the rest of the coordinator's state, LogBuffer is genuinely
// shared across goroutines: pkg/logging fans every Info/Warn/Error call
// out to whatever sinks are registered, regardless of which goroutine
// called it (the actor loop, the logfile worker, gin handler goroutines).
// It is the one place the single-actor no-locking design doesn't hold, so
// it gets its own mutex rather than funneling every log call through the
// actor's channel.
type LogBuffer struct {
	mu       sync.Mutex
	lines    []LogLine
	lastPeek int
}

// Append adds a line to the buffer.
func (b *LogBuffer) Append(line LogLine) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
}

// All returns every line ever appended, oldest first.
func (b *LogBuffer) All() []LogLine {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]LogLine, len(b.lines))
	copy(out, b.lines)
	return out
}

// DrainSincePeek returns every line appended since the previous call to
// DrainSincePeek, advancing the peek cursor.
func (b *LogBuffer) DrainSincePeek() []LogLine {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lastPeek >= len(b.lines) {
		return nil
	}
	out := make([]LogLine, len(b.lines)-b.lastPeek)
	copy(out, b.lines[b.lastPeek:])
	b.lastPeek = len(b.lines)
	return out
}
