package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dycart/fleet-backoffice/pkg/logger"
)

// UniqueRule declares a secondary uniqueness constraint on a collection.
// Key extracts the constrained value from a record; an empty key is exempt
// (the field is either absent or not scoped to this record).
type UniqueRule[T any] struct {
	Field string
	Key   func(T) string
}

// Config is the thin per-resource configuration driving the generic engine.
// Accessors read a record; mutators receive a pointer so Create/Update can
// stamp ids and timestamps without the model knowing about the store.
type Config[T any] struct {
	Name     string // resource name, used in logs
	Path     string // backing JSON file
	Seed     []T
	IDPrefix string // sequential id scheme: PREFIX-NNN

	ID        func(T) string
	SetID     func(*T, string)
	Stamp     func(*T, string) // set createdAt + updatedAt
	Touch     func(*T, string) // set updatedAt only
	Status    func(T) string   // nil when the resource has no status field
	SetStatus func(*T, string)
	Search    func(T) []string                 // text fields matched by the search filter
	SortKey   func(T, string) (string, bool)   // ordering key for a named field; ok=false for unknown fields
	Unique    []UniqueRule[T]
}

// Store owns one resource collection: an in-memory ordered slice backed by a
// flat JSON file that is rewritten in full after every mutation. A RWMutex
// guards the slice; List and All hand out snapshot copies.
type Store[T any] struct {
	mu   sync.RWMutex
	cfg  Config[T]
	recs []T
}

// New loads the collection from cfg.Path, seeding it on first run or on a
// read/parse failure.
func New[T any](cfg Config[T]) (*Store[T], error) {
	recs, err := loadFile(cfg.Path, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("load %s collection: %w", cfg.Name, err)
	}
	return &Store[T]{cfg: cfg, recs: recs}, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Size returns the current number of records.
func (s *Store[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs)
}

// All returns a snapshot copy of the whole collection in insertion order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make([]T, len(s.recs))
	copy(snap, s.recs)
	return snap
}

// List applies search/status filters, an optional field sort and page
// slicing to a snapshot of the collection. Extra predicates let callers add
// resource-specific filters (golf-course scope, battery status, ...) without
// widening Query.
func (s *Store[T]) List(q Query, extra ...func(T) bool) Page[T] {
	q = q.normalize()
	recs := s.All()

	filtered := recs[:0:0]
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, r := range recs {
		if term != "" && !s.matches(r, term) {
			continue
		}
		if q.Status != "" && q.Status != "all" && s.cfg.Status != nil && s.cfg.Status(r) != q.Status {
			continue
		}
		keep := true
		for _, pred := range extra {
			if !pred(r) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, r)
		}
	}

	s.sortRecords(filtered, q.SortBy, q.SortOrder)

	total := len(filtered)
	totalPages := (total + q.Limit - 1) / q.Limit
	start := (q.Page - 1) * q.Limit
	end := start + q.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	items := make([]T, end-start)
	copy(items, filtered[start:end])

	return Page[T]{Items: items, Total: total, Page: q.Page, TotalPages: totalPages}
}

func (s *Store[T]) matches(r T, term string) bool {
	if s.cfg.Search == nil {
		return false
	}
	for _, f := range s.cfg.Search(r) {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// sortRecords stably sorts by the named field. Unknown fields leave the
// order unchanged; desc reverses the ascending result.
func (s *Store[T]) sortRecords(recs []T, field, order string) {
	if field == "" || len(recs) == 0 || s.cfg.SortKey == nil {
		return
	}
	if _, ok := s.cfg.SortKey(recs[0], field); !ok {
		return
	}
	sort.SliceStable(recs, func(i, j int) bool {
		ki, _ := s.cfg.SortKey(recs[i], field)
		kj, _ := s.cfg.SortKey(recs[j], field)
		return ki < kj
	})
	if order == "desc" {
		for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
			recs[i], recs[j] = recs[j], recs[i]
		}
	}
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.recs {
		if s.cfg.ID(r) == id {
			return r, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// NextID returns the next sequential PREFIX-NNN id. It scans for the highest
// existing numeric suffix, so a gap left by a delete is never refilled.
func (s *Store[T]) NextID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextIDLocked()
}

func (s *Store[T]) nextIDLocked() string {
	max := 0
	prefix := s.cfg.IDPrefix + "-"
	for _, r := range s.recs {
		id := s.cfg.ID(r)
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(id, prefix)); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%03d", s.cfg.IDPrefix, max+1)
}

// Create assigns an id and timestamps, enforces uniqueness constraints,
// appends the record and persists the collection. The returned record is the
// stored value.
func (s *Store[T]) Create(rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.ID(rec) == "" {
		s.cfg.SetID(&rec, s.nextIDLocked())
	}
	for _, other := range s.recs {
		if s.cfg.ID(other) == s.cfg.ID(rec) {
			return rec, fmt.Errorf("%s id %s: %w", s.cfg.Name, s.cfg.ID(rec), ErrDuplicateKey)
		}
	}
	if err := s.checkUniqueLocked(rec, ""); err != nil {
		return rec, err
	}
	s.cfg.Stamp(&rec, now())
	s.recs = append(s.recs, rec)
	s.persistLocked()
	return rec, nil
}

// Update applies mutate to a copy of the stored record, re-validates
// uniqueness against the other records, touches updatedAt and persists.
func (s *Store[T]) Update(id string, mutate func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.recs {
		if s.cfg.ID(r) != id {
			continue
		}
		updated := r
		mutate(&updated)
		s.cfg.SetID(&updated, id) // id is immutable
		if err := s.checkUniqueLocked(updated, id); err != nil {
			return r, err
		}
		s.cfg.Touch(&updated, now())
		s.recs[i] = updated
		s.persistLocked()
		return updated, nil
	}
	var zero T
	return zero, ErrNotFound
}

// SetStatus is the restricted status-only update.
func (s *Store[T]) SetStatus(id, status string) (T, error) {
	return s.Update(id, func(r *T) {
		s.cfg.SetStatus(r, status)
	})
}

// Delete removes a single record; a missing id is an error.
func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.recs {
		if s.cfg.ID(r) == id {
			s.recs = append(s.recs[:i], s.recs[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// BulkDelete removes every record whose id is in ids. Non-matching ids are
// silently ignored, which makes the operation idempotent. Returns the number
// of removed records.
func (s *Store[T]) BulkDelete(ids []string) int {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.recs[:0:0]
	removed := 0
	for _, r := range s.recs {
		if drop[s.cfg.ID(r)] {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	if removed > 0 {
		s.recs = kept
		s.persistLocked()
	}
	return removed
}

func (s *Store[T]) checkUniqueLocked(rec T, selfID string) error {
	for _, rule := range s.cfg.Unique {
		key := rule.Key(rec)
		if key == "" {
			continue
		}
		for _, other := range s.recs {
			if selfID != "" && s.cfg.ID(other) == selfID {
				continue
			}
			if rule.Key(other) == key {
				return fmt.Errorf("%s %s already exists: %w", s.cfg.Name, rule.Field, ErrDuplicateKey)
			}
		}
	}
	return nil
}

// persistLocked rewrites the backing file. A failed save is logged and the
// in-memory mutation stands; there is no transactional guarantee.
func (s *Store[T]) persistLocked() {
	if err := saveFile(s.cfg.Path, s.recs); err != nil {
		logger.Errorf("persist %s collection to %s failed: %v", s.cfg.Name, s.cfg.Path, err)
	}
}
