package devstore

import (
	"errors"

	"github.com/labstack/gommon/log"

	"notekeep/internal/domain/entity"
	"notekeep/internal/uid"
)

// NoteService applies the document-store semantics: server-assigned ids
// and createdAt on create, 404 on updates/deletes of unknown or foreign
// ids, per-owner listing.
type NoteService struct {
	repo *NoteRepository
}

func NewNoteService(repo *NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) ListNotes(sub string) ([]*entity.NoteRecord, *APIError) {
	rows, err := s.repo.FindAllByOwner(sub)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, InternalServerError
	}

	recs := make([]*entity.NoteRecord, len(rows))
	for i, row := range rows {
		recs[i] = row.toRecord()
	}
	return recs, nil
}

func (s *NoteService) CreateNote(sub string, rec *entity.NoteRecord) (*entity.NoteRecord, *APIError) {
	if apierr := validateRecord(rec); apierr != nil {
		return nil, apierr
	}

	row, err := rowFromRecord(rec, sub)
	if err != nil {
		log.Errorf("failed to encode note: %v", err)
		return nil, InternalServerError
	}

	// The client sends its temporary id; the store assigns the real one.
	now := entity.NowUTC()
	row.ID = uid.Generate()
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := s.repo.Save(row); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, InternalServerError
	}
	return row.toRecord(), nil
}

func (s *NoteService) UpdateNote(sub, id string, rec *entity.NoteRecord) (*entity.NoteRecord, *APIError) {
	rec.ID = id
	if apierr := validateRecord(rec); apierr != nil {
		return nil, apierr
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, InternalServerError
	}

	// A foreign owner gets the same 404 as a missing row.
	if existing == nil || existing.OwnerSub != sub {
		return nil, NotFoundError
	}

	row, err := rowFromRecord(rec, sub)
	if err != nil {
		log.Errorf("failed to encode note: %v", err)
		return nil, InternalServerError
	}
	row.CreatedAt = existing.CreatedAt
	row.UpdatedAt = entity.NowUTC()

	if err := s.repo.Save(row); err != nil {
		log.Errorf("failed to update note: %v", err)
		return nil, InternalServerError
	}
	return row.toRecord(), nil
}

func (s *NoteService) DeleteNote(sub, id string) *APIError {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return InternalServerError
	}

	if existing == nil || existing.OwnerSub != sub {
		return NotFoundError
	}

	if err := s.repo.Delete(existing); err != nil {
		log.Errorf("failed to delete note: %v", err)
		return InternalServerError
	}
	return nil
}

func validateRecord(rec *entity.NoteRecord) *APIError {
	if _, err := entity.ParseNoteRecord(rec); err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			return FromValidationError(verr)
		}
		return MalformedBodyError
	}
	return nil
}
