package kvkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("CreateAndGet", func(t *testing.T) {
		reg := NewRegistry()

		require.NoError(t, reg.CreateSketch("visits", 100, 5))

		sketch, err := reg.Sketch("visits")
		require.NoError(t, err)
		assert.Equal(t, uint32(100), sketch.Width())
		assert.Equal(t, uint32(5), sketch.Depth())
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("DuplicateName", func(t *testing.T) {
		reg := NewRegistry()

		require.NoError(t, reg.CreateSketch("visits", 100, 5))
		assert.ErrorIs(t, reg.CreateSketch("visits", 200, 3), ErrSketchExists)
		assert.Equal(t, 1, reg.Len())

		// The original instance survives the rejected creation.
		sketch, err := reg.Sketch("visits")
		require.NoError(t, err)
		assert.Equal(t, uint32(100), sketch.Width())
	})

	t.Run("DefaultDimensions", func(t *testing.T) {
		reg := NewRegistry()

		require.NoError(t, reg.CreateSketch("visits", 0, 0))

		sketch, err := reg.Sketch("visits")
		require.NoError(t, err)
		assert.Equal(t, DefaultSketchWidth, sketch.Width())
		assert.Equal(t, DefaultSketchDepth, sketch.Depth())
	})

	t.Run("ConfiguredDefaults", func(t *testing.T) {
		reg := NewRegistry(WithDefaultSketchDims(500, 7))

		require.NoError(t, reg.CreateSketch("visits", 0, 0))

		sketch, err := reg.Sketch("visits")
		require.NoError(t, err)
		assert.Equal(t, uint32(500), sketch.Width())
		assert.Equal(t, uint32(7), sketch.Depth())
	})

	t.Run("CreateByProb", func(t *testing.T) {
		reg := NewRegistry()

		require.NoError(t, reg.CreateSketchByProb("visits", 0.001, 0.999))

		sketch, err := reg.Sketch("visits")
		require.NoError(t, err)
		assert.Equal(t, uint32(2000), sketch.Width())
		assert.Equal(t, uint32(10), sketch.Depth())
	})

	t.Run("NotFound", func(t *testing.T) {
		reg := NewRegistry()

		_, err := reg.Sketch("missing")
		assert.ErrorIs(t, err, ErrSketchNotFound)
	})

	t.Run("OrderedSetCreatedOnFirstUse", func(t *testing.T) {
		reg := NewRegistry()

		set := reg.OrderedSet("board")
		require.NotNil(t, set)
		require.True(t, set.Insert("alice"))

		// The same instance is returned on later lookups.
		assert.True(t, reg.OrderedSet("board").Contains("alice"))
	})

	t.Run("PersistenceStubs", func(t *testing.T) {
		reg := NewRegistry()

		assert.NoError(t, reg.SaveToFile("/tmp/kvkit.dump"))
		assert.NoError(t, reg.LoadFromFile("/tmp/kvkit.dump"))
	})
}
