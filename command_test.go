package kvkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Run("TypeOnly", func(t *testing.T) {
		cmd, err := ParseCommand([]byte("PING"))
		require.NoError(t, err)

		assert.Equal(t, "PING", cmd.Type)
		assert.Empty(t, cmd.Subtype)
		assert.Empty(t, cmd.Args)
	})

	t.Run("DottedSubtype", func(t *testing.T) {
		cmd, err := ParseCommand([]byte("CMS.INITBYDIM visits 100 5"))
		require.NoError(t, err)

		assert.Equal(t, "CMS", cmd.Type)
		assert.Equal(t, "INITBYDIM", cmd.Subtype)
		assert.Equal(t, []string{"visits", "100", "5"}, cmd.Args)
	})

	t.Run("LeadingSpaces", func(t *testing.T) {
		cmd, err := ParseCommand([]byte("   CMS.QUERY visits k"))
		require.NoError(t, err)

		assert.Equal(t, "CMS", cmd.Type)
		assert.Equal(t, "QUERY", cmd.Subtype)
		assert.Equal(t, []string{"visits", "k"}, cmd.Args)
	})

	t.Run("TrailingNewline", func(t *testing.T) {
		cmd, err := ParseCommand([]byte("CMS.INCRBY visits k 2\n"))
		require.NoError(t, err)

		assert.Equal(t, []string{"visits", "k", "2"}, cmd.Args)
	})

	t.Run("RepeatedSpaces", func(t *testing.T) {
		cmd, err := ParseCommand([]byte("ZSET.ADD  board   alice"))
		require.NoError(t, err)

		assert.Equal(t, []string{"board", "alice"}, cmd.Args)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseCommand(nil)
		assert.ErrorIs(t, err, ErrNilCommand)

		_, err = ParseCommand([]byte("   "))
		assert.ErrorIs(t, err, ErrNilCommand)
	})
}
