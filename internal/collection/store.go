// Package collection holds the one piece of shared mutable state on the
// client: the in-memory note collection. All writes go through the store's
// API (single-writer discipline); reads hand out clones so render code can
// never mutate shared state.
package collection

import (
	"strings"
	"sync"

	"notekeep/internal/domain/entity"
)

// Store is the canonical note collection. Slice order is the presentation
// order of the active view; it is a local-session ordering hint only and is
// never synced to the remote store.
type Store struct {
	mu    sync.Mutex
	notes []*entity.Note
}

func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a freshly listed collection, newest first as the remote
// store returns it.
func (s *Store) Replace(notes []*entity.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = make([]*entity.Note, len(notes))
	for i, n := range notes {
		s.notes[i] = n.Clone()
	}
}

// Prepend puts a new note at the head of the presentation order.
func (s *Store) Prepend(note *entity.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append([]*entity.Note{note.Clone()}, s.notes...)
}

// Insert places a note at the given presentation index, used by the
// rollback path to restore a removed entry where it was.
func (s *Store) Insert(note *entity.Note, at int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if at < 0 {
		at = 0
	}
	if at > len(s.notes) {
		at = len(s.notes)
	}
	s.notes = append(s.notes[:at], append([]*entity.Note{note.Clone()}, s.notes[at:]...)...)
}

// Get returns a clone of the note with the given id.
func (s *Store) Get(id string) (*entity.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notes {
		if n.ID == id {
			return n.Clone(), true
		}
	}
	return nil, false
}

// Update replaces the entry matching note.ID in place.
func (s *Store) Update(note *entity.Note) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notes {
		if n.ID == note.ID {
			s.notes[i] = note.Clone()
			return true
		}
	}
	return false
}

// Swap replaces the entry with oldID by a note carrying its server-assigned
// identity, keeping the presentation position. Used when a create call
// round-trips and the temporary client id gives way to the persisted one.
func (s *Store) Swap(oldID string, note *entity.Note) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notes {
		if n.ID == oldID {
			s.notes[i] = note.Clone()
			return true
		}
	}
	return false
}

// Remove deletes the entry with the given id and returns it along with its
// presentation index so a failed gateway call can put it back.
func (s *Store) Remove(id string) (*entity.Note, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return n, i, true
		}
	}
	return nil, 0, false
}

// Reorder moves the note to a new presentation index. Only display order
// changes; nothing is persisted.
func (s *Store) Reorder(id string, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	from := -1
	for i, n := range s.notes {
		if n.ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return false
	}
	if to < 0 {
		to = 0
	}
	if to >= len(s.notes) {
		to = len(s.notes) - 1
	}
	note := s.notes[from]
	s.notes = append(s.notes[:from], s.notes[from+1:]...)
	s.notes = append(s.notes[:to], append([]*entity.Note{note}, s.notes[to:]...)...)
	return true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// Active returns the notes shown on the main page: not archived, not
// trashed, pinned entries first within presentation order.
func (s *Store) Active() []*entity.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	pinned := make([]*entity.Note, 0)
	rest := make([]*entity.Note, 0)
	for _, n := range s.notes {
		if n.Archived || n.Trashed {
			continue
		}
		if n.Pinned {
			pinned = append(pinned, n.Clone())
		} else {
			rest = append(rest, n.Clone())
		}
	}
	return append(pinned, rest...)
}

// Archived returns archived, non-trashed notes.
func (s *Store) Archived() []*entity.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Note, 0)
	for _, n := range s.notes {
		if n.Archived && !n.Trashed {
			out = append(out, n.Clone())
		}
	}
	return out
}

// Trashed returns every trashed note. Trash takes precedence: a trashed
// note never shows up in the active or archived views whatever its other
// flags say.
func (s *Store) Trashed() []*entity.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Note, 0)
	for _, n := range s.notes {
		if n.Trashed {
			out = append(out, n.Clone())
		}
	}
	return out
}

// Search filters active and archived notes by a case-insensitive substring
// match over title and content. An empty term yields no results; search is
// inert until something is typed.
func (s *Store) Search(term string) []*entity.Note {
	if term == "" {
		return []*entity.Note{}
	}
	term = strings.ToLower(term)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Note, 0)
	for _, n := range s.notes {
		if n.Trashed {
			continue
		}
		if strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Content), term) {
			out = append(out, n.Clone())
		}
	}
	return out
}
