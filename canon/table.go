package canon

import (
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/adg/diagram"
)

// Table is a concurrency-safe set of equivalence classes keyed by canonical key.
type Table struct {
	mu      sync.Mutex
	entries map[string]*Entry
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// Insert records d under key. The first insertion stores d as the class
// representative and reports inserted; later ones only bump the count and
// return the stored representative.
func (t *Table) Insert(key string, d *diagram.Diagram) (*diagram.Diagram, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.entries[key]; ok {
		e.Count++
		return e.Diagram, false
	}
	t.entries[key] = &Entry{Key: key, Diagram: d, Count: 1}

	return d, true
}

// Len returns the number of classes.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}

// Entries returns a snapshot of the classes sorted by key.
func (t *Table) Entries() []Entry {
	t.mu.Lock()
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, *e)
	}
	t.mu.Unlock()

	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Key, b.Key) })

	return out
}
