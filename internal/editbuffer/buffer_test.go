package editbuffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAppendsAndMovesCursor(t *testing.T) {
	b := New("", 0)

	require.True(t, b.Write("h"))
	require.True(t, b.Write("he"))
	require.True(t, b.Write("hey"))

	assert.Equal(t, "hey", b.Value())
	assert.True(t, b.CanUndo())
	assert.False(t, b.CanRedo())
}

func TestUndoRedoInverse(t *testing.T) {
	b := New("", 0)
	b.Write("a")
	b.Write("ab")

	assert.Equal(t, "a", b.Undo())
	assert.Equal(t, "ab", b.Redo())
	// redo();undo() lands back on the same entry
	assert.Equal(t, "a", b.Undo())
	assert.Equal(t, "a", b.Value())
}

func TestUndoAtStartIsNoop(t *testing.T) {
	b := New("seed", 0)

	assert.Equal(t, "seed", b.Undo())
	assert.False(t, b.CanUndo())
}

func TestRedoAtEndIsNoop(t *testing.T) {
	b := New("seed", 0)
	b.Write("x")

	assert.Equal(t, "x", b.Redo())
}

func TestWriteTruncatesRedoFuture(t *testing.T) {
	b := New("", 0)
	b.Write("a")
	b.Write("ab")
	b.Undo()

	require.True(t, b.Write("ax"))

	assert.Equal(t, "ax", b.Redo(), "discarded future must be unreachable")
	assert.False(t, b.CanRedo())
}

func TestWriteRejectsOverLimitWithoutMutating(t *testing.T) {
	b := New("ok", 5)

	require.False(t, b.Write(strings.Repeat("x", 6)))

	assert.Equal(t, "ok", b.Value())
	assert.False(t, b.CanUndo())
}

func TestLimitCountsRunesNotBytes(t *testing.T) {
	b := New("", 5)

	// five runes, fifteen bytes
	require.True(t, b.Write("ありがとう"))
	assert.Equal(t, "ありがとう", b.Value())

	require.False(t, b.Write("ありがとうご"))
	assert.Equal(t, "ありがとう", b.Value())
}

func TestResetCollapsesHistory(t *testing.T) {
	b := New("", 0)
	b.Write("a")
	b.Write("ab")

	b.Reset("done")

	assert.Equal(t, "done", b.Value())
	assert.False(t, b.CanUndo())
	assert.False(t, b.CanRedo())
}
