package activity

import (
	"sync"
	"time"
)

// DefaultMaxEntries is the activity log capacity when none is configured.
const DefaultMaxEntries = 200

// Entry kinds recorded in the activity log.
const (
	KindCreated   = "task_created"
	KindUpdated   = "task_updated"
	KindCompleted = "task_completed"
	KindReopened  = "task_reopened"
	KindDeleted   = "task_deleted"
)

// Entry is one recorded change to the board.
type Entry struct {
	TaskID    string    `json:"task_id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Log is a bounded in-memory activity log. The oldest entries are dropped
// once capacity is reached.
type Log struct {
	entries    []Entry
	maxEntries int
	mu         sync.RWMutex
}

// NewLog creates a log holding at most maxEntries entries.
func NewLog(maxEntries int) *Log {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Log{
		entries:    make([]Entry, 0),
		maxEntries: maxEntries,
	}
}

// Record appends an entry, trimming the oldest ones beyond capacity.
func (l *Log) Record(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)
	if len(l.entries) > l.maxEntries {
		excess := len(l.entries) - l.maxEntries
		l.entries = l.entries[excess:]
	}
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.entries)
	if limit > n {
		limit = n
	}
	if limit < 0 {
		limit = 0
	}
	result := make([]Entry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		result = append(result, l.entries[i])
	}
	return result
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
