package devstore

import (
	"errors"

	"gorm.io/gorm"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// FindAllByOwner returns the owner's notes, newest first, matching the
// gateway's list ordering contract.
func (r *NoteRepository) FindAllByOwner(sub string) ([]*NoteRow, error) {
	var rows []*NoteRow
	err := r.db.Where("owner_sub = ?", sub).Order("created_at desc").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *NoteRepository) FindByID(id string) (*NoteRow, error) {
	var row NoteRow
	err := r.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *NoteRepository) Save(row *NoteRow) error {
	return r.db.Save(row).Error
}

func (r *NoteRepository) Delete(row *NoteRow) error {
	return r.db.Delete(row).Error
}
