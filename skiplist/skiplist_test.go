package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestSkipList(t *testing.T) {
	t.Run("NilCompare", func(t *testing.T) {
		s, err := New[int](nil)
		require.ErrorIs(t, err, ErrNilCompare)
		assert.Nil(t, s)
	})

	t.Run("InsertAndContains", func(t *testing.T) {
		s, err := New(compareInt)
		require.NoError(t, err)

		for _, v := range []int{5, 2, 8, 1, 9, 3} {
			assert.True(t, s.Insert(v))
		}

		assert.True(t, s.Contains(2))
		assert.False(t, s.Contains(7))
		assert.Equal(t, 6, s.Len())
	})

	t.Run("DuplicateInsert", func(t *testing.T) {
		s, err := New(compareInt)
		require.NoError(t, err)

		require.True(t, s.Insert(42))
		assert.False(t, s.Insert(42))
		assert.Equal(t, 1, s.Len())
		assert.True(t, s.Contains(42))
	})

	t.Run("EraseAbsent", func(t *testing.T) {
		s, err := New(compareInt)
		require.NoError(t, err)

		require.True(t, s.Insert(1))
		assert.False(t, s.Erase(2))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("InsertEraseContains", func(t *testing.T) {
		s, err := New(compareInt)
		require.NoError(t, err)

		require.True(t, s.Insert(7))
		require.True(t, s.Erase(7))
		assert.False(t, s.Contains(7))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("EraseThenReinsert", func(t *testing.T) {
		s, err := New(compareInt)
		require.NoError(t, err)

		require.True(t, s.Insert(7))
		require.True(t, s.Erase(7))
		assert.True(t, s.Insert(7))
		assert.True(t, s.Contains(7))
	})

	t.Run("ManyValues", func(t *testing.T) {
		s, err := New(compareInt, func(o *Options[int]) {
			o.Seed = 1
		})
		require.NoError(t, err)

		// Insertion order chosen to exercise both slab growth and level
		// growth.
		for i := 0; i < 1000; i++ {
			v := (i * 389) % 1000 // 389 is coprime with 1000, so all distinct
			require.True(t, s.Insert(v))
		}

		require.Equal(t, 1000, s.Len())

		for i := 0; i < 1000; i++ {
			assert.True(t, s.Contains(i))
		}

		for i := 0; i < 1000; i += 2 {
			require.True(t, s.Erase(i))
		}

		require.Equal(t, 500, s.Len())

		for i := 0; i < 1000; i++ {
			assert.Equal(t, i%2 == 1, s.Contains(i))
		}
	})

	t.Run("SlotReuse", func(t *testing.T) {
		s, err := New(compareInt, func(o *Options[int]) {
			o.Seed = 7
		})
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			require.True(t, s.Insert(i))
		}

		slabLen := len(s.nodes)

		for i := 0; i < 100; i++ {
			require.True(t, s.Erase(i))
		}

		for i := 100; i < 200; i++ {
			require.True(t, s.Insert(i))
		}

		// Erased slots are recycled, the slab does not grow again.
		assert.Equal(t, slabLen, len(s.nodes))
	})

	t.Run("MaxLevelShrinksOnErase", func(t *testing.T) {
		s, err := New(compareInt, func(o *Options[int]) {
			o.Seed = 3
		})
		require.NoError(t, err)

		for i := 0; i < 2000; i++ {
			require.True(t, s.Insert(i))
		}

		grown := s.maxLevel
		require.Greater(t, grown, 1)

		for i := 0; i < 2000; i++ {
			require.True(t, s.Erase(i))
		}

		assert.Equal(t, 1, s.maxLevel)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("DeterministicSeed", func(t *testing.T) {
		build := func() *SkipList[int] {
			s, err := New(compareInt, func(o *Options[int]) {
				o.Seed = 12345
			})
			require.NoError(t, err)

			for i := 0; i < 500; i++ {
				require.True(t, s.Insert(i))
			}

			return s
		}

		a := build()
		b := build()

		require.Equal(t, a.maxLevel, b.maxLevel)
		for i := range a.nodes {
			assert.Equal(t, a.nodes[i].level, b.nodes[i].level)
		}
	})

	t.Run("AscendingOrder", func(t *testing.T) {
		s, err := New(compareInt, func(o *Options[int]) {
			o.Seed = 99
		})
		require.NoError(t, err)

		for _, v := range []int{5, 2, 8, 1, 9, 3} {
			require.True(t, s.Insert(v))
		}

		var got []int
		for idx := s.nodes[head].next[0]; idx != head; idx = s.nodes[idx].next[0] {
			got = append(got, s.nodes[idx].value)
		}

		assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, got)
	})
}

func TestSkipListOwnership(t *testing.T) {
	t.Run("CloneOnInsert", func(t *testing.T) {
		type box struct{ v int }

		cloned := 0

		s, err := New(func(a, b *box) int { return compareInt(a.v, b.v) }, func(o *Options[*box]) {
			o.Clone = func(b *box) *box {
				cloned++
				c := *b
				return &c
			}
		})
		require.NoError(t, err)

		original := &box{v: 1}
		require.True(t, s.Insert(original))
		require.Equal(t, 1, cloned)

		// Mutating the caller's value must not affect membership.
		original.v = 2
		assert.True(t, s.Contains(&box{v: 1}))
		assert.False(t, s.Contains(&box{v: 2}))
	})

	t.Run("ReleaseOnErase", func(t *testing.T) {
		released := []int{}

		s, err := New(compareInt, func(o *Options[int]) {
			o.Release = func(v int) { released = append(released, v) }
		})
		require.NoError(t, err)

		require.True(t, s.Insert(1))
		require.True(t, s.Insert(2))
		require.True(t, s.Erase(1))

		assert.Equal(t, []int{1}, released)
	})

	t.Run("ReleaseOnClose", func(t *testing.T) {
		released := map[int]bool{}

		s, err := New(compareInt, func(o *Options[int]) {
			o.Release = func(v int) { released[v] = true }
		})
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			require.True(t, s.Insert(i))
		}

		// An erased value is released exactly once, at erase time.
		require.True(t, s.Erase(4))

		s.Close()

		require.Len(t, released, 10)
		for i := 0; i < 10; i++ {
			assert.True(t, released[i])
		}
	})
}

func TestRandomLevel(t *testing.T) {
	s, err := New(compareInt, func(o *Options[int]) {
		o.Seed = 42
	})
	require.NoError(t, err)

	levels := make(map[int]int)
	for i := 0; i < 100000; i++ {
		l := s.randomLevel()
		require.GreaterOrEqual(t, l, 1)
		require.LessOrEqual(t, l, MaxLevel)
		levels[l]++
	}

	// Geometric with p = 0.25: roughly three quarters of draws stop at
	// level 1.
	assert.InDelta(t, 0.75, float64(levels[1])/100000, 0.02)
	assert.InDelta(t, 0.1875, float64(levels[2])/100000, 0.02)
}
