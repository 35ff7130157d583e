package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/domain/entity"
)

func note(id, title string) *entity.Note {
	n := entity.NewNote(id)
	n.Title = title
	return n
}

func TestViewsArePartitionedWithTrashPrecedence(t *testing.T) {
	active := note("1", "active")
	archived := note("2", "archived")
	archived.Archived = true
	trashedArchived := note("3", "both")
	trashedArchived.Archived = true
	trashedArchived.Trashed = true

	s := NewStore()
	s.Replace([]*entity.Note{active, archived, trashedArchived})

	require.Len(t, s.Active(), 1)
	assert.Equal(t, "1", s.Active()[0].ID)

	require.Len(t, s.Archived(), 1)
	assert.Equal(t, "2", s.Archived()[0].ID)

	require.Len(t, s.Trashed(), 1)
	assert.Equal(t, "3", s.Trashed()[0].ID, "trash wins over the archived flag")
}

func TestActivePutsPinnedFirst(t *testing.T) {
	a := note("a", "plain")
	b := note("b", "pinned")
	b.Pinned = true

	s := NewStore()
	s.Replace([]*entity.Note{a, b})

	got := s.Active()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	s := NewStore()
	s.Replace([]*entity.Note{
		note("1", "Grocery List"),
		note("2", "work"),
	})
	trashed := note("3", "grocery trash")
	trashed.Trashed = true
	s.Prepend(trashed)

	got := s.Search("GROCER")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	assert.Empty(t, s.Search(""), "empty term is inert")
}

func TestSearchMatchesContentToo(t *testing.T) {
	n := note("1", "untitled")
	n.Content = "remember the MILK"

	s := NewStore()
	s.Replace([]*entity.Note{n})

	assert.Len(t, s.Search("milk"), 1)
}

func TestReorderMovesPresentationOnly(t *testing.T) {
	s := NewStore()
	s.Replace([]*entity.Note{note("1", "a"), note("2", "b"), note("3", "c")})

	require.True(t, s.Reorder("3", 0))

	got := s.Active()
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[1].ID)

	assert.False(t, s.Reorder("nope", 0))
}

func TestRemoveReturnsIndexForRollback(t *testing.T) {
	s := NewStore()
	s.Replace([]*entity.Note{note("1", "a"), note("2", "b"), note("3", "c")})

	removed, at, ok := s.Remove("2")
	require.True(t, ok)
	assert.Equal(t, 1, at)

	s.Insert(removed, at)
	got := s.Active()
	assert.Equal(t, "2", got[1].ID)
}

func TestReadsReturnClones(t *testing.T) {
	s := NewStore()
	s.Replace([]*entity.Note{note("1", "a")})

	view := s.Active()
	view[0].Title = "mutated"

	fresh, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "a", fresh.Title)
}

func TestSwapReplacesTemporaryID(t *testing.T) {
	s := NewStore()
	s.Prepend(note("local-tmp", "draft"))

	persisted := note("srv-1", "draft")
	persisted.CreatedAt = 123

	require.True(t, s.Swap("local-tmp", persisted))
	_, ok := s.Get("local-tmp")
	assert.False(t, ok)

	got, ok := s.Get("srv-1")
	require.True(t, ok)
	assert.True(t, got.Persisted())
}
