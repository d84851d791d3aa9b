package ranking

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// Store persists ranking entries.
type Store interface {
	LoadEntries() ([]Entry, error)
	SaveEntries(entries []Entry) error
}

// Appender is implemented by stores that add a single entry atomically.
// Sessions sharing one store record through it so they never overwrite each
// other's times.
type Appender interface {
	AppendEntry(e Entry, topN int) error
}

// FileStore keeps the ranking in a JSON file. It is safe for concurrent use
// within one process.
type FileStore struct {
	Path string

	mu sync.Mutex
}

// NewFileStore creates a store backed by the JSON file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// LoadEntries reads the file. A missing file is an empty ranking.
func (f *FileStore) LoadEntries() ([]Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// SaveEntries replaces the file contents.
func (f *FileStore) SaveEntries(entries []Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(entries)
}

// AppendEntry rewrites the file with e inserted and the best topN kept.
func (f *FileStore) AppendEntry(e Entry, topN int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}
	b := NewBoard(topN, entries)
	b.Insert(e)
	return f.save(b.Entries())
}

func (f *FileStore) load() ([]Entry, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ranking: cannot read %s: %w", f.Path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("ranking: cannot parse %s: %w", f.Path, err)
	}
	return entries, nil
}

// save writes the file through a temporary sibling and a rename, so a crash
// never leaves a truncated ranking behind.
func (f *FileStore) save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("ranking: cannot encode entries: %w", err)
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ranking: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".ranking-*.json")
	if err != nil {
		return fmt.Errorf("ranking: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("ranking: cannot write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("ranking: cannot write %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("ranking: cannot replace %s: %w", f.Path, err)
	}
	return nil
}

// MemoryStore keeps entries in memory. It backs SSH sessions without a
// database and tests.
// It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

// LoadEntries returns a copy of the stored entries.
func (m *MemoryStore) LoadEntries() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...), nil
}

// SaveEntries replaces the stored entries.
func (m *MemoryStore) SaveEntries(entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]Entry(nil), entries...)
	return nil
}

// AppendEntry inserts e into the stored ranking and keeps the best topN.
func (m *MemoryStore) AppendEntry(e Entry, topN int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := NewBoard(topN, m.entries)
	b.Insert(e)
	m.entries = b.Entries()
	return nil
}

// Load reads a board from store. Unreadable stores degrade to an empty board.
// A nil store or logger is allowed.
func Load(store Store, topN int, logger *log.Logger) *Board {
	if store == nil {
		return NewBoard(topN, nil)
	}
	entries, err := store.LoadEntries()
	if err != nil {
		if logger != nil {
			logger.Warn("ranking unavailable, starting empty", "err", err)
		}
		return NewBoard(topN, nil)
	}
	return NewBoard(topN, entries)
}

// Save writes the board to store, logging instead of failing.
// It reports whether the write succeeded.
func Save(store Store, board *Board, logger *log.Logger) bool {
	if store == nil {
		return false
	}
	if err := store.SaveEntries(board.Entries()); err != nil {
		if logger != nil {
			logger.Warn("ranking not saved", "err", err)
		}
		return false
	}
	return true
}

// Record inserts e into board and persists it. Stores implementing Appender
// get the single entry and the board is refreshed from the store afterwards,
// so times recorded by other sessions show up too. The returned rank is the
// one e took on the local board.
func Record(store Store, board *Board, e Entry, logger *log.Logger) int {
	e.Name = normalizeName(e.Name)
	rank := board.Insert(e)
	if store == nil {
		return rank
	}

	a, ok := store.(Appender)
	if !ok {
		Save(store, board, logger)
		return rank
	}
	if err := a.AppendEntry(e, board.TopN()); err != nil {
		if logger != nil {
			logger.Warn("ranking not saved", "err", err)
		}
		return rank
	}
	if entries, err := store.LoadEntries(); err == nil {
		*board = *NewBoard(board.TopN(), entries)
	}
	return rank
}
