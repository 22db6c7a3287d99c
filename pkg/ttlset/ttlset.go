// Package ttlset provides a bounded set of recently seen keys. Entries expire
// after a fixed TTL and the oldest entries are evicted once a capacity cap is
// reached, so memory use stays bounded no matter how many distinct keys flow
// through.
package ttlset

import (
	"sync"
	"time"
)

type record struct {
	when time.Time
	seq  uint64
}

type entry struct {
	key string
	record
}

// Set remembers keys for a limited time. Safe for concurrent use.
type Set struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	seq      uint64
	seen     map[string]record
	// queue holds insertion order for TTL pruning and capacity eviction.
	// Keys re-added after a Forget leave stale entries behind; those are
	// matched by sequence number and skipped lazily.
	queue []entry

	// now is replaceable for tests.
	now func() time.Time
}

// New constructs a Set. A capacity <= 0 means unbounded.
func New(ttl time.Duration, capacity int) *Set {
	return &Set{
		ttl:      ttl,
		capacity: capacity,
		seen:     make(map[string]record),
		now:      time.Now,
	}
}

// Observe reports whether key was seen within the TTL, and marks it as seen
// when it is new. The check and the mark are one atomic step. A duplicate
// observation does not extend the window: a key observed continuously still
// becomes fresh again once its original TTL elapses.
func (s *Set) Observe(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.prune(now)

	if _, dup := s.seen[key]; dup {
		return true
	}

	s.seq++
	rec := record{when: now, seq: s.seq}
	s.seen[key] = rec
	s.queue = append(s.queue, entry{key: key, record: rec})
	s.evict()

	return false
}

// Forget removes key from the set so the next Observe reports it as new.
func (s *Set) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seen, key)
}

// Len returns the number of live keys.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune(s.now())

	return len(s.seen)
}

// dropHead removes the oldest queue entry, deleting the key only when the
// entry is not stale. Caller must hold mu.
func (s *Set) dropHead() {
	head := s.queue[0]
	s.queue = s.queue[1:]
	if rec, ok := s.seen[head.key]; ok && rec.seq == head.seq {
		delete(s.seen, head.key)
	}
}

// prune drops expired entries. Caller must hold mu.
func (s *Set) prune(now time.Time) {
	cutoff := now.Add(-s.ttl)
	for len(s.queue) > 0 && s.queue[0].when.Before(cutoff) {
		s.dropHead()
	}
}

// evict enforces the capacity cap by dropping the oldest keys. Caller must
// hold mu.
func (s *Set) evict() {
	if s.capacity <= 0 {
		return
	}
	for len(s.seen) > s.capacity && len(s.queue) > 0 {
		s.dropHead()
	}
}
