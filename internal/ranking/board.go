// Package ranking keeps the best-time table: an ordered, bounded list of
// name and completion-time records, plus the stores that persist it.
package ranking

import (
	"sort"
	"strings"
)

// DefaultTopN bounds the table when no size is configured.
const DefaultTopN = 50

// DefaultName is recorded when the player submits an empty name.
const DefaultName = "Anon"

// Entry is a single completed round.
type Entry struct {
	Name   string `json:"name"`
	TimeMs int64  `json:"time_ms"`
}

// Board is the in-memory ranking, ascending by time. Entries with equal
// times keep their insertion order.
type Board struct {
	entries []Entry
	topN    int
}

// NewBoard builds a board from previously stored entries.
// The input is sorted and truncated; it is not modified.
func NewBoard(topN int, entries []Entry) *Board {
	if topN <= 0 {
		topN = DefaultTopN
	}
	b := &Board{topN: topN}
	b.entries = make([]Entry, 0, min(len(entries), topN)+1)
	for _, e := range entries {
		e.Name = normalizeName(e.Name)
		b.entries = append(b.entries, e)
	}
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].TimeMs < b.entries[j].TimeMs
	})
	if len(b.entries) > topN {
		b.entries = b.entries[:topN]
	}
	return b
}

// Insert adds an entry and returns its 1-based rank, or 0 when the entry
// fell outside the top N.
func (b *Board) Insert(e Entry) int {
	e.Name = normalizeName(e.Name)

	// After every existing entry with the same time.
	pos := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].TimeMs > e.TimeMs
	})
	if pos >= b.topN {
		return 0
	}

	b.entries = append(b.entries, Entry{})
	copy(b.entries[pos+1:], b.entries[pos:])
	b.entries[pos] = e
	if len(b.entries) > b.topN {
		b.entries = b.entries[:b.topN]
	}
	return pos + 1
}

// Entries returns a copy of the ordered entries.
func (b *Board) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Best returns the fastest entry.
func (b *Board) Best() (Entry, bool) {
	if len(b.entries) == 0 {
		return Entry{}, false
	}
	return b.entries[0], true
}

// TopN returns the board's size bound.
func (b *Board) TopN() int {
	return b.topN
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return name
}
