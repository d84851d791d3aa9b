package ranking

import (
	"fmt"
	"testing"
)

func TestNewBoardSortsAndTruncates(t *testing.T) {
	b := NewBoard(3, []Entry{
		{"c", 300}, {"a", 100}, {"", 200}, {"d", 400},
	})

	expected := []Entry{{"a", 100}, {"Anon", 200}, {"c", 300}}
	got := b.Entries()
	if len(got) != len(expected) {
		t.Fatalf("Entries() len = %d, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Entries()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestBoardInsert(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		expected int
	}{
		{"fastest", Entry{"x", 50}, 1},
		{"middle", Entry{"x", 250}, 3},
		{"tie goes after existing", Entry{"x", 200}, 3},
		{"slowest still fits", Entry{"x", 1000}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(4, []Entry{{"a", 100}, {"b", 200}, {"c", 300}})
			if rank := b.Insert(tc.entry); rank != tc.expected {
				t.Errorf("Insert() = %d, expected %d", rank, tc.expected)
			}
		})
	}
}

func TestBoardInsertTruncated(t *testing.T) {
	b := NewBoard(2, []Entry{{"a", 100}, {"b", 200}})

	if rank := b.Insert(Entry{"slow", 500}); rank != 0 {
		t.Errorf("Insert() = %d, expected 0 for an entry outside the top N", rank)
	}
	if rank := b.Insert(Entry{"fast", 10}); rank != 1 {
		t.Errorf("Insert() = %d, expected 1", rank)
	}
	if len(b.Entries()) != 2 {
		t.Errorf("len(Entries()) = %d, expected 2", len(b.Entries()))
	}
	if last := b.Entries()[1]; last.Name != "a" {
		t.Errorf("last entry = %v, expected a", last)
	}
}

func TestBoardDefaultName(t *testing.T) {
	b := NewBoard(0, nil)
	b.Insert(Entry{"   ", 42})

	best, ok := b.Best()
	if !ok || best.Name != DefaultName {
		t.Errorf("Best() = %v, %v, expected %q", best, ok, DefaultName)
	}
	if b.TopN() != DefaultTopN {
		t.Errorf("TopN() = %d, expected %d", b.TopN(), DefaultTopN)
	}
}

func TestBoardBoundedAtTopN(t *testing.T) {
	b := NewBoard(DefaultTopN, nil)
	for i := 0; i < DefaultTopN+10; i++ {
		b.Insert(Entry{Name: fmt.Sprintf("p%d", i), TimeMs: int64(1000 - i)})
	}
	if len(b.Entries()) != DefaultTopN {
		t.Errorf("len(Entries()) = %d, expected %d", len(b.Entries()), DefaultTopN)
	}
	entries := b.Entries()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].TimeMs > entries[i].TimeMs {
			t.Fatalf("entries not ascending at %d: %v > %v", i, entries[i-1], entries[i])
		}
	}
}

func TestBestEmpty(t *testing.T) {
	if _, ok := NewBoard(5, nil).Best(); ok {
		t.Error("Best() on an empty board should report false")
	}
}
