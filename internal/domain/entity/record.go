package entity

// NoteRecord is the canonical persisted shape of a note, field for field
// what the remote document store holds.
type NoteRecord struct {
	ID                  string        `json:"id" validate:"required"`
	CreatedAt           *int64        `json:"createdAt"`
	Title               string        `json:"title" validate:"max=1000"`
	Content             string        `json:"content" validate:"max=5000"`
	BackgroundColor     string        `json:"backgroundColor" validate:"required,notecolor"`
	BackgroundColorDark string        `json:"backgroundColorDark" validate:"required,notecolordark"`
	IsArchived          bool          `json:"isArchived"`
	IsPinned            bool          `json:"isPinned"`
	IsTrash             bool          `json:"isTrash"`
	Images              []ImageRecord `json:"images"`
	Reminder            *int64        `json:"reminder"`
}

type ImageRecord struct {
	URL         string `json:"url" validate:"required"`
	Description string `json:"description,omitempty"`
}

// Record serializes the note into its persisted shape.
func (n *Note) Record() *NoteRecord {
	rec := &NoteRecord{
		ID:                  n.ID,
		Title:               n.Title,
		Content:             n.Content,
		BackgroundColor:     string(n.Color),
		BackgroundColorDark: string(n.ColorDark),
		IsArchived:          n.Archived,
		IsPinned:            n.Pinned,
		IsTrash:             n.Trashed,
		Images:              make([]ImageRecord, len(n.Images)),
	}
	for i, img := range n.Images {
		rec.Images[i] = ImageRecord{URL: img.URL, Description: img.Description}
	}
	if n.CreatedAt != 0 {
		createdAt := n.CreatedAt
		rec.CreatedAt = &createdAt
	}
	if n.Reminder != nil {
		reminder := *n.Reminder
		rec.Reminder = &reminder
	}
	return rec
}

// ParseNoteRecord validates a persisted record and converts it back into a
// note. Malformed records yield a *ValidationError, never a panic; callers
// loading a collection are expected to skip the bad record and keep going.
func ParseNoteRecord(rec *NoteRecord) (*Note, error) {
	if rec == nil {
		return nil, newValidationError("record", "record is nil")
	}

	if err := validate.Struct(rec); err != nil {
		return nil, fromValidatorError(err)
	}

	note := &Note{
		ID:        rec.ID,
		Title:     rec.Title,
		Content:   rec.Content,
		Color:     NoteColor(rec.BackgroundColor),
		ColorDark: NoteColor(rec.BackgroundColorDark),
		Archived:  rec.IsArchived,
		Pinned:    rec.IsPinned,
		Trashed:   rec.IsTrash,
		Images:    make([]Image, len(rec.Images)),
	}
	for i, img := range rec.Images {
		note.Images[i] = Image{URL: img.URL, Description: img.Description}
	}
	if rec.CreatedAt != nil {
		note.CreatedAt = *rec.CreatedAt
	}
	if rec.Reminder != nil {
		reminder := *rec.Reminder
		note.Reminder = &reminder
	}
	return note, nil
}
