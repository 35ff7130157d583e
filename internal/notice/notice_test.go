package notice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostRecentMessageWins(t *testing.T) {
	q := NewQueue()

	_, ok := q.Current()
	assert.False(t, ok)

	q.Push("Note deleted")
	q.Push("Note restored")

	msg, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, "Note restored", msg)

	q.Dismiss()
	_, ok = q.Current()
	assert.False(t, ok)
}
