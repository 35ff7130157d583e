package entity

// NoteColor is one of the five background palette values. Light and dark
// values are paired: every light color has exactly one dark counterpart.
type NoteColor string

const (
	ColorDefault NoteColor = "#ffffff"
	ColorRed     NoteColor = "#f28b82"
	ColorYellow  NoteColor = "#fff475"
	ColorGreen   NoteColor = "#ccff90"
	ColorBlue    NoteColor = "#aecbfa"

	ColorDarkDefault NoteColor = "#202124"
	ColorDarkRed     NoteColor = "#5c2b29"
	ColorDarkYellow  NoteColor = "#635d19"
	ColorDarkGreen   NoteColor = "#345920"
	ColorDarkBlue    NoteColor = "#1e3a5f"
)

const (
	MaxTitleLength   = 1000
	MaxContentLength = 5000
)

var darkVariants = map[NoteColor]NoteColor{
	ColorDefault: ColorDarkDefault,
	ColorRed:     ColorDarkRed,
	ColorYellow:  ColorDarkYellow,
	ColorGreen:   ColorDarkGreen,
	ColorBlue:    ColorDarkBlue,
}

// DarkVariant returns the dark counterpart of a light palette color.
func (c NoteColor) DarkVariant() NoteColor {
	return darkVariants[c]
}

func (c NoteColor) ValidLight() bool {
	_, ok := darkVariants[c]
	return ok
}

func (c NoteColor) ValidDark() bool {
	for _, dark := range darkVariants {
		if dark == c {
			return true
		}
	}
	return false
}

// Image is an attachment reference. Notes carry the shape but no image is
// ever attached in the current feature set.
type Image struct {
	URL         string
	Description string
}

// Note is a user-authored text entity.
//
// ID is a client-generated UUID until the first successful persist, after
// which it is replaced by the server-assigned id. CreatedAt is 0 until the
// server assigns it. Reminder is nil when no reminder is set; clearing a
// reminder also yields nil, there is no separate "cleared" state.
type Note struct {
	ID        string
	CreatedAt int64
	Title     string
	Content   string
	Color     NoteColor
	ColorDark NoteColor
	Archived  bool
	Pinned    bool
	Trashed   bool
	Images    []Image
	Reminder  *int64
}

// NewNote returns a blank unpersisted note with the default palette pair.
func NewNote(id string) *Note {
	return &Note{
		ID:        id,
		Color:     ColorDefault,
		ColorDark: ColorDarkDefault,
		Images:    []Image{},
	}
}

// Persisted reports whether the note has round-tripped through the remote
// store at least once.
func (n *Note) Persisted() bool {
	return n.CreatedAt != 0
}

// Empty reports whether both text fields are blank.
func (n *Note) Empty() bool {
	return n.Title == "" && n.Content == ""
}

// DefaultFlags reports whether everything except the text fields is still
// in its initial state.
func (n *Note) DefaultFlags() bool {
	return !n.Archived && !n.Pinned && n.Reminder == nil && n.Color == ColorDefault
}

// Clone returns a deep copy. The collection store hands out clones so that
// render code can never touch shared state.
func (n *Note) Clone() *Note {
	c := *n
	c.Images = make([]Image, len(n.Images))
	copy(c.Images, n.Images)
	if n.Reminder != nil {
		r := *n.Reminder
		c.Reminder = &r
	}
	return &c
}

// SetColor applies a light palette value and its paired dark variant.
func (n *Note) SetColor(c NoteColor) {
	n.Color = c
	n.ColorDark = c.DarkVariant()
}

// SetArchived toggles the archive flag. Archived and pinned are mutually
// exclusive: archiving clears the pin.
func (n *Note) SetArchived(archived bool) {
	n.Archived = archived
	if archived {
		n.Pinned = false
	}
}

// SetPinned toggles the pin flag, clearing the archive flag when set.
func (n *Note) SetPinned(pinned bool) {
	n.Pinned = pinned
	if pinned {
		n.Archived = false
	}
}
