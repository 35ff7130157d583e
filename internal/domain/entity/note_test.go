package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validNote() *Note {
	reminder := int64(1700000000000)
	return &Note{
		ID:        "note-42",
		CreatedAt: 1690000000000,
		Title:     "Groceries",
		Content:   "milk, eggs",
		Color:     ColorYellow,
		ColorDark: ColorDarkYellow,
		Pinned:    true,
		Images:    []Image{},
		Reminder:  &reminder,
	}
}

func TestNoteRecordRoundTrip(t *testing.T) {
	note := validNote()

	parsed, err := ParseNoteRecord(note.Record())
	require.NoError(t, err)
	assert.Equal(t, note, parsed)
}

func TestNoteRecordRoundTripThroughJSON(t *testing.T) {
	note := validNote()
	note.Reminder = nil
	note.CreatedAt = 0

	raw, err := json.Marshal(note.Record())
	require.NoError(t, err)

	var rec NoteRecord
	require.NoError(t, json.Unmarshal(raw, &rec))

	parsed, err := ParseNoteRecord(&rec)
	require.NoError(t, err)
	assert.Equal(t, note, parsed)
	assert.False(t, parsed.Persisted())
	assert.Nil(t, parsed.Reminder)
}

func TestParseNoteRecordRejectsMissingID(t *testing.T) {
	rec := validNote().Record()
	rec.ID = ""

	_, err := ParseNoteRecord(rec)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Problems, "id")
}

func TestParseNoteRecordRejectsUnknownColor(t *testing.T) {
	rec := validNote().Record()
	rec.BackgroundColor = "#bada55"

	_, err := ParseNoteRecord(rec)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Problems, "backgroundcolor")
}

func TestParseNoteRecordRejectsOversizedFields(t *testing.T) {
	rec := validNote().Record()
	rec.Title = strings.Repeat("a", MaxTitleLength+1)

	_, err := ParseNoteRecord(rec)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	rec = validNote().Record()
	rec.Content = strings.Repeat("b", MaxContentLength+1)

	_, err = ParseNoteRecord(rec)
	require.ErrorAs(t, err, &verr)
}

func TestArchiveAndPinAreMutuallyExclusive(t *testing.T) {
	note := NewNote("n1")

	note.SetArchived(true)
	note.SetPinned(true)
	assert.False(t, note.Archived)
	assert.True(t, note.Pinned)

	note.SetArchived(true)
	assert.True(t, note.Archived)
	assert.False(t, note.Pinned)
}

func TestDarkVariantPairsEveryLightColor(t *testing.T) {
	for _, c := range []NoteColor{ColorDefault, ColorRed, ColorYellow, ColorGreen, ColorBlue} {
		require.True(t, c.ValidLight())
		assert.True(t, c.DarkVariant().ValidDark(), "color %s", c)
	}
}

func TestCloneIsDeep(t *testing.T) {
	note := validNote()
	clone := note.Clone()

	*clone.Reminder = 1
	clone.Title = "changed"

	assert.Equal(t, int64(1700000000000), *note.Reminder)
	assert.Equal(t, "Groceries", note.Title)
}
