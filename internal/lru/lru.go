// Package lru implements the LRU-ordered map that backs the user
// dictionary (spec §4.8): a mapping from K to V that simultaneously
// supports ascending-key iteration and most-recently-touched-first
// iteration.
//
// Per the spec's design notes (§9), the source uses raw interior pointers
// for the recency list with sentinel head/tail nodes and a side-map for
// O(1) access; we reproduce the sentinel-list shape but back the nodes by
// an index-addressed slab (a Go slice) instead of raw pointers, since Go
// has no pointer arithmetic and a slab is the natural idiomatic substitute
// (spec §9's explicitly-sanctioned alternative). Freed slots are reused via
// a free list so long-running dictionaries don't leak slab entries.
package lru

import (
	"sort"

	"github.com/gskk/skkcore/internal/skkerr"
)

const (
	nilIdx = -1
)

type recencyNode struct {
	key        string
	value      any
	prev, next int
}

// Map is the LRU-ordered map. Its zero value is not usable; use New.
type Map struct {
	values map[string]any   // value storage: source of truth for membership
	slab   []recencyNode    // recency list storage
	index  map[string]int   // key -> slab index
	free   []int            // reusable slab slots
	sorted []string         // sorted keys, kept in sync incrementally
	head   int              // sentinel: most-recently-used end
	tail   int              // sentinel: least-recently-used end
}

// New creates an empty Map.
func New() *Map {
	m := &Map{
		values: make(map[string]any),
		index:  make(map[string]int),
		head:   nilIdx,
		tail:   nilIdx,
	}
	return m
}

func (m *Map) unlink(i int) {
	n := &m.slab[i]
	if n.prev != nilIdx {
		m.slab[n.prev].next = n.next
	} else {
		m.head = n.next
	}
	if n.next != nilIdx {
		m.slab[n.next].prev = n.prev
	} else {
		m.tail = n.prev
	}
}

func (m *Map) pushFront(i int) {
	n := &m.slab[i]
	n.prev = nilIdx
	n.next = m.head
	if m.head != nilIdx {
		m.slab[m.head].prev = i
	}
	m.head = i
	if m.tail == nilIdx {
		m.tail = i
	}
}

func (m *Map) alloc(key string, value any) int {
	if len(m.free) > 0 {
		i := m.free[len(m.free)-1]
		m.free = m.free[:len(m.free)-1]
		m.slab[i] = recencyNode{key: key, value: value, prev: nilIdx, next: nilIdx}
		return i
	}
	m.slab = append(m.slab, recencyNode{key: key, value: value, prev: nilIdx, next: nilIdx})
	return len(m.slab) - 1
}

func (m *Map) sortedInsert(key string) {
	i := sort.SearchStrings(m.sorted, key)
	m.sorted = append(m.sorted, "")
	copy(m.sorted[i+1:], m.sorted[i:])
	m.sorted[i] = key
}

func (m *Map) sortedRemove(key string) {
	i := sort.SearchStrings(m.sorted, key)
	if i >= len(m.sorted) || m.sorted[i] != key {
		panic(skkerr.InvariantViolation + ": key " + key + " present in value map but not in sorted view")
	}
	m.sorted = append(m.sorted[:i], m.sorted[i+1:]...)
}

// Insert sets k to v. If k is already present, its value is overwritten and
// its recency node is moved to the head; otherwise k is inserted at its
// sorted position and a fresh recency node is pushed to the head.
func (m *Map) Insert(k string, v any) {
	if i, ok := m.index[k]; ok {
		m.values[k] = v
		m.slab[i].value = v
		m.unlink(i)
		m.pushFront(i)
		return
	}
	m.values[k] = v
	i := m.alloc(k, v)
	m.index[k] = i
	m.pushFront(i)
	m.sortedInsert(k)
}

// Get returns the value for k, touching its recency to the head.
func (m *Map) Get(k string) (any, bool) {
	v, ok := m.values[k]
	if !ok {
		return nil, false
	}
	i, idxOK := m.index[k]
	if !idxOK {
		panic(skkerr.InvariantViolation + ": key " + k + " present in value map but missing from recency index")
	}
	m.unlink(i)
	m.pushFront(i)
	return v, true
}

// Peek returns the value for k without touching recency.
func (m *Map) Peek(k string) (any, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Remove deletes k from both views. It panics with the
// skkerr.InvariantViolation sentinel if the two views have desynced (one
// found the key, the other didn't) rather than silently doing a partial
// removal.
func (m *Map) Remove(k string) bool {
	_, inValues := m.values[k]
	i, inIndex := m.index[k]
	if inValues != inIndex {
		panic(skkerr.InvariantViolation + ": key " + k + " present in exactly one of value map / recency index")
	}
	if !inValues {
		return false
	}
	delete(m.values, k)
	delete(m.index, k)
	m.unlink(i)
	m.free = append(m.free, i)
	m.sortedRemove(k)
	return true
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if len(m.values) != len(m.sorted) {
		panic(skkerr.InvariantViolation + ": value map and sorted view have diverged in size")
	}
	return len(m.values)
}

// IterSorted calls f for every key in ascending order. It stops early if f
// returns false. It panics with the invariant-violation sentinel if the
// sorted view and value map have diverged in size.
func (m *Map) IterSorted(f func(key string, value any) bool) {
	if len(m.sorted) != len(m.values) {
		panic(skkerr.InvariantViolation + ": sorted view length does not match value map size")
	}
	for _, k := range m.sorted {
		v, ok := m.values[k]
		if !ok {
			panic(skkerr.InvariantViolation + ": sorted view contains key " + k + " absent from value map")
		}
		if !f(k, v) {
			return
		}
	}
}

// IterLRU calls f for every key, most-recently-touched first. It stops
// early if f returns false. It panics with the invariant-violation
// sentinel if the recency list and value map have diverged in size.
func (m *Map) IterLRU(f func(key string, value any) bool) {
	count := 0
	for i := m.head; i != nilIdx; i = m.slab[i].next {
		count++
		if count > len(m.values) {
			panic(skkerr.InvariantViolation + ": recency list longer than value map")
		}
		if !f(m.slab[i].key, m.slab[i].value) {
			return
		}
	}
	if count != len(m.values) {
		panic(skkerr.InvariantViolation + ": recency list length does not match value map size")
	}
}
