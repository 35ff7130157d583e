package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/domain/entity"
)

func TestComposerExpandsAndResetsOnClose(t *testing.T) {
	s := NewCreate()
	assert.Equal(t, StateCreateIdle, s.State())

	require.NoError(t, s.Focus(0))
	assert.Equal(t, StateCreateEditing, s.State())

	require.NoError(t, s.WriteTitle("Groceries"))
	require.NoError(t, s.WriteContent("milk"))

	draft, err := s.Close()
	require.NoError(t, err)
	assert.Equal(t, Draft{Title: "Groceries", Content: "milk"}, draft)

	// the composer is blank again for the next note
	assert.Equal(t, StateCreateIdle, s.State())
	assert.Equal(t, Draft{}, s.Draft())
	assert.False(t, s.CanUndoTitle())
}

func TestModalEditCapturesAndRestoresScroll(t *testing.T) {
	note := entity.NewNote("n1")
	note.Title = "A"
	s := NewRead(note)

	require.NoError(t, s.Focus(420))
	assert.Equal(t, StateReadModalEdit, s.State())
	assert.Equal(t, 420, s.ScrollOffset())

	require.NoError(t, s.WriteTitle("B"))
	draft, err := s.Close()
	require.NoError(t, err)
	assert.Equal(t, "B", draft.Title)
	assert.Equal(t, StateRead, s.State())
	assert.Equal(t, 0, s.ScrollOffset())
}

func TestWritesRejectedOutsideEditing(t *testing.T) {
	s := NewRead(entity.NewNote("n1"))

	assert.ErrorIs(t, s.WriteTitle("x"), ErrNotEditing)

	_, err := s.Close()
	assert.ErrorIs(t, err, ErrNotEditing)
}

func TestTrashedNoteRejectsEditing(t *testing.T) {
	note := entity.NewNote("n1")
	note.Trashed = true
	s := NewRead(note)

	assert.Equal(t, StateTrashed, s.State())
	assert.ErrorIs(t, s.Focus(0), ErrTrashedNote)
	assert.ErrorIs(t, s.WriteContent("x"), ErrTrashedNote)

	require.NoError(t, s.Restore())
	assert.Equal(t, StateRead, s.State())
	require.NoError(t, s.Focus(0))
}

func TestWriteOverLimitKeepsHistory(t *testing.T) {
	s := NewCreate()
	require.NoError(t, s.Focus(0))
	require.NoError(t, s.WriteTitle("ok"))

	err := s.WriteTitle(strings.Repeat("x", entity.MaxTitleLength+1))
	assert.ErrorIs(t, err, ErrValueTooLong)
	assert.Equal(t, "ok", s.Draft().Title)
}

func TestUndoBuffersAreIndependent(t *testing.T) {
	s := NewCreate()
	require.NoError(t, s.Focus(0))
	require.NoError(t, s.WriteTitle("t1"))
	require.NoError(t, s.WriteContent("c1"))
	require.NoError(t, s.WriteContent("c2"))

	assert.Equal(t, "c1", s.UndoContent())
	assert.Equal(t, "t1", s.Draft().Title, "undoing content must not move the title cursor")
	assert.True(t, s.CanUndoTitle())
}
