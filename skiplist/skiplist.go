package skiplist

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/bits-and-blooms/bitset"
)

// MaxLevel is the maximum number of levels a node can occupy.
const MaxLevel = 32

// ErrNilCompare is returned by New when no comparison function is given.
var ErrNilCompare = errors.New("skiplist: compare function is required")

// head is the slab index of the sentinel head node.
const head uint32 = 0

// Options represents the options for configuring a SkipList.
type Options[V any] struct {
	// Clone deep-copies a value before it is stored. If nil, the list stores
	// the caller's value as-is (borrowing semantics).
	Clone func(V) V

	// Release is invoked on a stored value when it is erased or when the
	// list is closed. If nil, erased values are simply dropped.
	Release func(V)

	// Seed seeds the level-selection RNG. Zero selects a seed derived from
	// the wall clock mixed with a per-instance counter. Fixing the seed makes
	// the node-level sequence, and therefore the list shape, deterministic.
	Seed uint64
}

type node[V any] struct {
	value V
	level int32
	next  []uint32 // successor index per level, len == level
}

// SkipList is an ordered set over values of type V.
type SkipList[V any] struct {
	compare func(a, b V) int
	clone   func(V) V
	release func(V)

	nodes []node[V] // slab; index 0 is the sentinel head
	free  []uint32  // recycled slab slots
	live  *bitset.BitSet

	maxLevel int
	length   int

	// Per-instance mutable scratch, overwritten on every insert/erase.
	rngState uint32
	update   [MaxLevel]uint32
}

var seedSequence atomic.Uint64

// New creates an empty SkipList ordered by compare, which must return a
// negative value if a < b, zero if a == b and a positive value if a > b.
func New[V any](compare func(a, b V) int, optFns ...func(o *Options[V])) (*SkipList[V], error) {
	if compare == nil {
		return nil, ErrNilCompare
	}

	opts := Options[V]{}
	for _, fn := range optFns {
		fn(&opts)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) ^ seedSequence.Add(1)*0x9e3779b97f4a7c15
	}

	s := &SkipList[V]{
		compare:  compare,
		clone:    opts.Clone,
		release:  opts.Release,
		nodes:    make([]node[V], 1, 16),
		live:     bitset.New(16),
		maxLevel: 1,
		rngState: uint32(seed) ^ uint32(seed>>32),
	}

	// The sentinel occupies every level so the descent can always start at
	// the current maximum.
	s.nodes[head] = node[V]{level: MaxLevel, next: make([]uint32, MaxLevel)}

	if s.rngState == 0 {
		s.rngState = 1
	}

	return s, nil
}

// Len returns the number of stored values.
func (s *SkipList[V]) Len() int {
	return s.length
}

// Contains reports whether a value equal to v under the comparison function
// is present.
func (s *SkipList[V]) Contains(v V) bool {
	cur := head
	for level := s.maxLevel - 1; level >= 0; level-- {
		for {
			next := s.nodes[cur].next[level]
			if next == head {
				break
			}

			cmp := s.compare(s.nodes[next].value, v)
			if cmp < 0 {
				cur = next
			} else if cmp == 0 {
				return true
			} else {
				break
			}
		}
	}

	return false
}

// Insert adds v to the set. It returns false without mutating the list if an
// equal value is already present.
func (s *SkipList[V]) Insert(v V) bool {
	cur := head
	for level := s.maxLevel - 1; level >= 0; level-- {
		for {
			next := s.nodes[cur].next[level]
			if next == head {
				break
			}

			cmp := s.compare(s.nodes[next].value, v)
			if cmp < 0 {
				cur = next
			} else if cmp == 0 {
				return false // duplicate
			} else {
				break
			}
		}
		s.update[level] = cur
	}

	newLevel := s.randomLevel()

	if newLevel > s.maxLevel {
		for level := s.maxLevel; level < newLevel; level++ {
			s.update[level] = head
		}
		s.maxLevel = newLevel
	}

	value := v
	if s.clone != nil {
		value = s.clone(v)
	}

	idx := s.alloc(value, newLevel)

	for level := 0; level < newLevel; level++ {
		s.nodes[idx].next[level] = s.nodes[s.update[level]].next[level]
		s.nodes[s.update[level]].next[level] = idx
	}

	s.length++

	return true
}

// Erase removes the value equal to v. It returns false if no such value is
// present. The Release hook, if set, is invoked on the stored value.
func (s *SkipList[V]) Erase(v V) bool {
	cur := head
	found := false

	for level := s.maxLevel - 1; level >= 0; level-- {
		for {
			next := s.nodes[cur].next[level]
			if next == head {
				break
			}

			cmp := s.compare(s.nodes[next].value, v)
			if cmp < 0 {
				cur = next
			} else if cmp == 0 {
				found = true
				break
			} else {
				break
			}
		}
		s.update[level] = cur
	}

	if !found {
		return false
	}

	target := s.nodes[s.update[0]].next[0]

	for level := 0; level < int(s.nodes[target].level); level++ {
		s.nodes[s.update[level]].next[level] = s.nodes[target].next[level]
	}

	s.freeNode(target)

	for s.maxLevel > 1 && s.nodes[head].next[s.maxLevel-1] == head {
		s.maxLevel--
	}

	s.length--

	return true
}

// Close releases every stored value through the Release hook and drops the
// slab. The list must not be used afterwards.
func (s *SkipList[V]) Close() {
	if s.release != nil {
		for idx := uint(1); idx < uint(len(s.nodes)); idx++ {
			if s.live.Test(idx) {
				s.release(s.nodes[idx].value)
			}
		}
	}

	s.nodes = nil
	s.free = nil
	s.live = nil
	s.maxLevel = 1
	s.length = 0
}

func (s *SkipList[V]) alloc(value V, level int) uint32 {
	n := node[V]{value: value, level: int32(level), next: make([]uint32, level)}

	var idx uint32
	if free := len(s.free); free > 0 {
		idx = s.free[free-1]
		s.free = s.free[:free-1]
		s.nodes[idx] = n
	} else {
		s.nodes = append(s.nodes, n)
		idx = uint32(len(s.nodes) - 1)
	}

	s.live.Set(uint(idx))

	return idx
}

func (s *SkipList[V]) freeNode(idx uint32) {
	if s.release != nil {
		s.release(s.nodes[idx].value)
	}

	s.nodes[idx] = node[V]{} // drop the value reference for the GC
	s.live.Clear(uint(idx))
	s.free = append(s.free, idx)
}

// nextRand advances the per-instance linear congruential generator
// (Numerical Recipes constants).
func (s *SkipList[V]) nextRand() uint32 {
	s.rngState = s.rngState*1664525 + 1013904223
	return s.rngState
}

// randomLevel draws a node level with P(level > n) = 0.25^n, consuming two
// bits of the generator per level instead of one draw per coin flip.
func (s *SkipList[V]) randomLevel() int {
	level := 1
	rnd := s.nextRand()

	for rnd&3 == 0 && level < MaxLevel {
		level++
		rnd >>= 2
	}

	return level
}
