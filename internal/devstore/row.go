// Package devstore is a local stand-in for the managed document database:
// the same per-note contract the client's gateway expects, backed by
// sqlite. It exists for development and integration tests; it is not the
// production backend.
package devstore

import (
	"encoding/json"

	"notekeep/internal/domain/entity"
)

// NoteRow is the sqlite row shape for one persisted note.
type NoteRow struct {
	ID        string `gorm:"primaryKey"`
	OwnerSub  string `gorm:"not null;index"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	Color     string `gorm:"not null"`
	ColorDark string `gorm:"not null"`
	Archived  bool   `gorm:"not null"`
	Pinned    bool   `gorm:"not null"`
	Trashed   bool   `gorm:"not null"`
	Images    string `gorm:"not null"` // JSON-encoded attachment list
	Reminder  *int64
	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null"`
}

func rowFromRecord(rec *entity.NoteRecord, ownerSub string) (*NoteRow, error) {
	images, err := json.Marshal(rec.Images)
	if err != nil {
		return nil, err
	}

	row := &NoteRow{
		ID:        rec.ID,
		OwnerSub:  ownerSub,
		Title:     rec.Title,
		Content:   rec.Content,
		Color:     rec.BackgroundColor,
		ColorDark: rec.BackgroundColorDark,
		Archived:  rec.IsArchived,
		Pinned:    rec.IsPinned,
		Trashed:   rec.IsTrash,
		Images:    string(images),
	}
	if rec.Reminder != nil {
		reminder := *rec.Reminder
		row.Reminder = &reminder
	}
	return row, nil
}

func (r *NoteRow) toRecord() *entity.NoteRecord {
	var images []entity.ImageRecord
	if err := json.Unmarshal([]byte(r.Images), &images); err != nil {
		images = []entity.ImageRecord{}
	}
	if images == nil {
		images = []entity.ImageRecord{}
	}

	createdAt := r.CreatedAt
	rec := &entity.NoteRecord{
		ID:                  r.ID,
		CreatedAt:           &createdAt,
		Title:               r.Title,
		Content:             r.Content,
		BackgroundColor:     r.Color,
		BackgroundColorDark: r.ColorDark,
		IsArchived:          r.Archived,
		IsPinned:            r.Pinned,
		IsTrash:             r.Trashed,
		Images:              images,
	}
	if r.Reminder != nil {
		reminder := *r.Reminder
		rec.Reminder = &reminder
	}
	return rec
}
