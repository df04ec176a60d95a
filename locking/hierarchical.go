// Package locking provides lock-ordering utilities complementing the
// deadlock detection offered by github.com/sasha-s/go-deadlock: where
// go-deadlock observes lock acquisition ordering across the whole process,
// HierarchicalMutex enforces an explicit hierarchy declared by the caller.
package locking

import (
	"sync"

	"github.com/petermattis/goid"
	"github.com/sasha-s/go-deadlock"

	"github.com/ARM-software/golang-collections/collections/commonerrors"
)

// NewHierarchicalMutex returns a mutex belonging to the given hierarchy
// level. A goroutine may only acquire hierarchical mutexes in strictly
// descending level order: locking a mutex of a level greater than or equal
// to the lowest level the goroutine already holds is a programming error and
// results in a panic. The first acquisition of a goroutine always succeeds.
//
// Example: with h := NewHierarchicalMutex(1000) and l :=
// NewHierarchicalMutex(100), locking l after h is accepted whereas locking h
// after l panics.
func NewHierarchicalMutex(level int) *HierarchicalMutex {
	return &HierarchicalMutex{level: level}
}

// HierarchicalMutex implements [sync.Locker] and can be used with the
// standard synchronisation facilities.
type HierarchicalMutex struct {
	mu    deadlock.Mutex
	level int
	// Level the owning goroutine held before acquiring this mutex, if any;
	// only ever touched by the lock holder.
	previous     int
	previousHeld bool
}

// Lock locks the mutex. If the hierarchy is violated, the calling goroutine
// panics with an error of type commonerrors.ErrConflict.
func (m *HierarchicalMutex) Lock() {
	id := goid.Get()
	current, held := currentLevel(id)
	if held && m.level >= current {
		panic(commonerrors.Newf(commonerrors.ErrConflict,
			"hierarchy violation: acquiring a mutex of level [%d] whilst holding level [%d]", m.level, current))
	}
	m.mu.Lock()
	m.previous = current
	m.previousHeld = held
	setLevel(id, m.level)
}

// Unlock unlocks the mutex. Any hierarchical mutex up to the previously held
// level then becomes safe to lock again for the calling goroutine.
func (m *HierarchicalMutex) Unlock() {
	id := goid.Get()
	if _, held := currentLevel(id); !held {
		panic(commonerrors.New(commonerrors.ErrConflict, "unlock of an unlocked hierarchical mutex"))
	}
	if m.previousHeld {
		setLevel(id, m.previous)
	} else {
		clearLevel(id)
	}
	m.mu.Unlock()
}

// Level returns the hierarchy level of the mutex.
func (m *HierarchicalMutex) Level() int {
	return m.level
}

// Goroutine-local hierarchy levels, keyed by goroutine id. Go offers no
// thread-local storage; the registry plays that role.
var (
	levelsMu sync.RWMutex
	levels   = make(map[int64]int)
)

func currentLevel(id int64) (level int, held bool) {
	levelsMu.RLock()
	defer levelsMu.RUnlock()
	level, held = levels[id]
	return
}

func setLevel(id int64, level int) {
	levelsMu.Lock()
	defer levelsMu.Unlock()
	levels[id] = level
}

func clearLevel(id int64) {
	levelsMu.Lock()
	defer levelsMu.Unlock()
	delete(levels, id)
}
