// Package cache holds the in-memory result cache shared by the paginated
// fetch controller and the optimistic favorite mutation. Entries come in
// three shapes that may hold the same product at the same time; callers
// dispatch on the concrete type, never on assumptions about the shape.
package cache

import (
	"strings"
	"sync"
	"time"

	"whey/domain"
)

// Cache key namespaces. Every entry that can contain a product item lives
// under one of these so the mutation engine can snapshot them wholesale.
const (
	ListNamespace   = "products:list:"
	DetailNamespace = "products:detail:"
)

// Entry is the closed variant set of cacheable result shapes.
type Entry interface {
	// Clone returns a value-level deep copy sufficient to restore the
	// entry exactly, regardless of later in-place patches.
	Clone() Entry

	sealed()
}

// PaginatedEntry accumulates infinite-scroll pages in arrival order.
type PaginatedEntry struct {
	Pages   [][]domain.ProductItem
	HasMore bool
}

// FlatEntry is a single ordered result list.
type FlatEntry struct {
	Items []domain.ProductItem
}

// DetailEntry is the single-record product page shape.
type DetailEntry struct {
	Detail *domain.ProductDetail
}

func (e *PaginatedEntry) sealed() {}

func (e *FlatEntry) sealed() {}

func (e *DetailEntry) sealed() {}

// Ensure the variant set stays closed.
var (
	_ Entry = (*PaginatedEntry)(nil)
	_ Entry = (*FlatEntry)(nil)
	_ Entry = (*DetailEntry)(nil)
)

func (e *PaginatedEntry) Clone() Entry {
	pages := make([][]domain.ProductItem, len(e.Pages))
	for i, page := range e.Pages {
		pages[i] = append([]domain.ProductItem(nil), page...)
	}
	return &PaginatedEntry{Pages: pages, HasMore: e.HasMore}
}

func (e *FlatEntry) Clone() Entry {
	return &FlatEntry{Items: append([]domain.ProductItem(nil), e.Items...)}
}

func (e *DetailEntry) Clone() Entry {
	if e.Detail == nil {
		return &DetailEntry{}
	}
	detail := *e.Detail
	detail.Ingredients = append([]string(nil), e.Detail.Ingredients...)
	return &DetailEntry{Detail: &detail}
}

type record struct {
	entry    Entry
	stale    bool
	storedAt time.Time
}

// Store is an injectable in-memory cache. The source model it reimplements
// was cooperative single threaded; echo handlers are not, so reads and
// writes are guarded here.
type Store struct {
	mu      sync.RWMutex
	records map[string]record
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]record),
		now:     time.Now,
	}
}

// Get returns the cached entry for key, or nil when absent. Stale entries
// are reported so readers can re-fetch authoritative data.
func (s *Store) Get(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[key]
	if !ok {
		return nil, false
	}
	return rec.entry, !rec.stale
}

func (s *Store) Set(key string, entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = record{entry: entry, storedAt: s.now()}
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
}

// SnapshotPrefix deep-copies every entry whose key starts with one of the
// given prefixes. The returned map restores state exactly via Restore.
func (s *Store) SnapshotPrefix(prefixes ...string) map[string]Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[string]Entry)
	for key, rec := range s.records {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				snapshot[key] = rec.entry.Clone()
				break
			}
		}
	}
	return snapshot
}

// Restore puts snapshotted entries back, overwriting any interim patches.
// Keys created after the snapshot under other names are left alone; the
// rollback only needs to undo what the snapshot covered.
func (s *Store) Restore(snapshot map[string]Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, entry := range snapshot {
		rec := s.records[key]
		rec.entry = entry
		if rec.storedAt.IsZero() {
			rec.storedAt = s.now()
		}
		s.records[key] = rec
	}
}

// Patch applies fn to the entry under key while holding the write lock.
// fn must touch only the affected items so unrelated concurrent updates to
// other entries are never clobbered.
func (s *Store) Patch(key string, fn func(Entry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[key]; ok {
		fn(rec.entry)
	}
}

// PatchPrefix applies fn to every entry under the given prefixes.
func (s *Store) PatchPrefix(fn func(key string, entry Entry), prefixes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, rec := range s.records {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				fn(key, rec.entry)
				break
			}
		}
	}
}

// MarkStalePrefix flags matching entries so the next read re-fetches
// authoritative data; the entries keep serving until then.
func (s *Store) MarkStalePrefix(prefixes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, rec := range s.records {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				rec.stale = true
				s.records[key] = rec
				break
			}
		}
	}
}

// SweepStale evicts stale entries older than maxAge and returns how many
// were removed. Driven by the background sweeper job.
func (s *Store) SweepStale(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-maxAge)
	removed := 0
	for key, rec := range s.records {
		if rec.stale && rec.storedAt.Before(cutoff) {
			delete(s.records, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
