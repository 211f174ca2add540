package booth

import (
	"sync"
	"time"
)

// Print records one exported file.
type Print struct {
	SessionID string
	Path      string
	Layout    string
	At        time.Time
}

// Journal keeps the most recent prints of this process in memory.
type Journal struct {
	mu      sync.RWMutex
	entries []Print
	maxSize int
}

// NewJournal creates a journal holding at most maxEntries prints.
func NewJournal(maxEntries int) *Journal {
	if maxEntries <= 0 {
		maxEntries = JournalSize
	}
	return &Journal{
		entries: make([]Print, 0, maxEntries),
		maxSize: maxEntries,
	}
}

// Add records a print, dropping the oldest one when full.
func (j *Journal) Add(p Print) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, p)
	if len(j.entries) > j.maxSize {
		j.entries = j.entries[len(j.entries)-j.maxSize:]
	}
}

// Recent returns up to n prints, oldest first. n <= 0 returns all of them.
func (j *Journal) Recent(n int) []Print {
	j.mu.RLock()
	defer j.mu.RUnlock()

	start := 0
	if n > 0 && n < len(j.entries) {
		start = len(j.entries) - n
	}
	result := make([]Print, len(j.entries)-start)
	copy(result, j.entries[start:])
	return result
}

// Len returns the number of prints held.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}
