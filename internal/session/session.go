// Package session implements the note lifecycle state machine and the
// ephemeral edit session that feeds the reconciliation engine.
package session

import (
	"errors"

	"notekeep/internal/domain/entity"
	"notekeep/internal/editbuffer"
)

// State is a note's lifecycle state as seen by the UI layer.
type State string

const (
	StateRead          State = "READ"
	StateReadModalEdit State = "READ_MODAL_EDIT"
	StateCreateIdle    State = "CREATE_IDLE"
	StateCreateEditing State = "CREATE_EDITING"
	StateTrashed       State = "TRASHED"
)

var (
	// ErrTrashedNote rejects content mutation of a trashed note. Only
	// restore and hard delete are legal there.
	ErrTrashedNote = errors.New("cannot edit a trashed note")

	// ErrHardDeleteOutsideTrash rejects permanent deletion of anything not
	// already in the trash.
	ErrHardDeleteOutsideTrash = errors.New("hard delete is only allowed from the trash")

	// ErrNotEditing rejects writes while no edit surface is open.
	ErrNotEditing = errors.New("session is not in an editing state")

	// ErrValueTooLong rejects a write past the field's length cap without
	// touching the buffer history.
	ErrValueTooLong = errors.New("value exceeds the field length limit")
)

// Draft is the not-yet-committed pair of text fields handed to the
// reconciliation engine on close.
type Draft struct {
	Title   string
	Content string
}

func (d Draft) Empty() bool {
	return d.Title == "" && d.Content == ""
}

// Session ties one note (or the composer) to its two edit buffers and its
// lifecycle state. It is owned by a single UI surface and discarded after
// commit or cancel.
type Session struct {
	state  State
	noteID string

	title   *editbuffer.Buffer
	content *editbuffer.Buffer

	// scroll offset of the page behind the modal, restored on exit
	scrollOffset int
}

// NewCreate returns the composer session, idle and blank.
func NewCreate() *Session {
	return &Session{
		state:   StateCreateIdle,
		title:   editbuffer.New("", entity.MaxTitleLength),
		content: editbuffer.New("", entity.MaxContentLength),
	}
}

// NewRead returns a session for an existing note. A trashed note starts in
// the trashed state, where every edit entry point is rejected.
func NewRead(note *entity.Note) *Session {
	state := StateRead
	if note.Trashed {
		state = StateTrashed
	}
	return &Session{
		state:   state,
		noteID:  note.ID,
		title:   editbuffer.New(note.Title, entity.MaxTitleLength),
		content: editbuffer.New(note.Content, entity.MaxContentLength),
	}
}

func (s *Session) State() State   { return s.state }
func (s *Session) NoteID() string { return s.noteID }

// Creating reports whether this session is the composer rather than an
// existing note.
func (s *Session) Creating() bool {
	return s.state == StateCreateIdle || s.state == StateCreateEditing
}

// Focus opens the edit surface: the composer expands, an existing note is
// promoted into the modal editor. scrollOffset is the page offset to
// restore when the modal closes.
func (s *Session) Focus(scrollOffset int) error {
	switch s.state {
	case StateRead:
		s.state = StateReadModalEdit
		s.scrollOffset = scrollOffset
		return nil
	case StateCreateIdle:
		s.state = StateCreateEditing
		return nil
	case StateTrashed:
		return ErrTrashedNote
	case StateReadModalEdit, StateCreateEditing:
		return nil
	}
	return ErrNotEditing
}

// WriteTitle records a keystroke-level title change.
func (s *Session) WriteTitle(value string) error {
	return s.write(s.title, value)
}

// WriteContent records a keystroke-level content change.
func (s *Session) WriteContent(value string) error {
	return s.write(s.content, value)
}

func (s *Session) write(buf *editbuffer.Buffer, value string) error {
	if s.state != StateReadModalEdit && s.state != StateCreateEditing {
		if s.state == StateTrashed {
			return ErrTrashedNote
		}
		return ErrNotEditing
	}
	if !buf.Write(value) {
		return ErrValueTooLong
	}
	return nil
}

// Undo/redo operate per field; the two buffers never couple.

func (s *Session) UndoTitle() string   { return s.title.Undo() }
func (s *Session) RedoTitle() string   { return s.title.Redo() }
func (s *Session) UndoContent() string { return s.content.Undo() }
func (s *Session) RedoContent() string { return s.content.Redo() }

func (s *Session) CanUndoTitle() bool   { return s.title.CanUndo() }
func (s *Session) CanRedoTitle() bool   { return s.title.CanRedo() }
func (s *Session) CanUndoContent() bool { return s.content.CanUndo() }
func (s *Session) CanRedoContent() bool { return s.content.CanRedo() }

// Draft returns the current field values without closing the session.
func (s *Session) Draft() Draft {
	return Draft{Title: s.title.Value(), Content: s.content.Value()}
}

// ScrollOffset returns the page offset captured when the modal opened.
func (s *Session) ScrollOffset() int {
	return s.scrollOffset
}

// Close leaves the editing state and returns the final draft for
// reconciliation. The composer resets to blank so the next note can start
// accumulating; a modal session collapses its history onto the committed
// values.
func (s *Session) Close() (Draft, error) {
	draft := s.Draft()
	switch s.state {
	case StateReadModalEdit:
		s.state = StateRead
		s.scrollOffset = 0
		s.title.Reset(draft.Title)
		s.content.Reset(draft.Content)
		return draft, nil
	case StateCreateEditing:
		s.state = StateCreateIdle
		s.title.Reset("")
		s.content.Reset("")
		return draft, nil
	}
	return Draft{}, ErrNotEditing
}

// MarkTrashed moves the session into the trashed state after the note was
// sent to the trash from the read view.
func (s *Session) MarkTrashed() {
	if !s.Creating() {
		s.state = StateTrashed
	}
}

// Restore brings a trashed note's session back to the read state.
func (s *Session) Restore() error {
	if s.state != StateTrashed {
		return ErrNotEditing
	}
	s.state = StateRead
	return nil
}
