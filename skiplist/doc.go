// Package skiplist provides a probabilistically balanced ordered set with
// expected logarithmic search, insert and erase.
//
// Values are kept in ascending order under a caller-supplied comparison
// function; no two stored values compare equal. Nodes live in a slab and
// reference their successors by stable uint32 indices, so the structure
// contains no inter-node Go pointers.
//
// A SkipList instance is not safe for concurrent use. Each instance owns
// mutable per-call scratch state (the predecessor cache and the RNG used for
// level selection) that is overwritten on every operation; callers must
// serialize access externally.
package skiplist
