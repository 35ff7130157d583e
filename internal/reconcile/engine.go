// Package reconcile decides, on session close, whether a draft results in
// a create, update, delete or nothing at all, and applies the outcome to
// the local collection optimistically before the remote call resolves.
// Rollback on gateway failure lives here and nowhere else.
package reconcile

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"notekeep/internal/auth"
	"notekeep/internal/collection"
	"notekeep/internal/domain/entity"
	"notekeep/internal/gateway"
	"notekeep/internal/notice"
	"notekeep/internal/session"
)

// Action is the single operation a committed session reduces to.
type Action int

const (
	ActionNone Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

// Notice lines surfaced to the user.
const (
	NoticeEmptyDiscarded = "Empty note discarded"
	NoticeDeleted        = "Note deleted"
	NoticeTrashed        = "Note moved to trash"
	NoticeRestored       = "Note restored"
	NoticeTrashedEdit    = "Cannot edit a trashed note"
	NoticeFailure        = "Something went wrong, your change was not saved"
)

var (
	ErrNoteNotFound    = errors.New("note not found in collection")
	ErrUnknownColor    = errors.New("unknown background color")
	ErrInvalidReminder = errors.New("reminder must be a future timestamp")
)

// Decide maps a draft-vs-snapshot diff to an action. A nil snapshot means
// create context. Precedence follows the commit rules: empty creations are
// discarded, unchanged edits are no-ops, a persisted note emptied down to
// nothing with otherwise default flags becomes an implicit delete.
func Decide(draft session.Draft, snapshot *entity.Note) Action {
	if snapshot == nil {
		if draft.Empty() {
			return ActionNone
		}
		return ActionCreate
	}

	if draft.Title == snapshot.Title && draft.Content == snapshot.Content {
		return ActionNone
	}

	if draft.Empty() && snapshot.DefaultFlags() {
		return ActionDelete
	}
	return ActionUpdate
}

// Engine owns every mutation of the collection store. Render code only
// ever reads snapshots.
type Engine struct {
	store   *collection.Store
	gw      gateway.Gateway
	auth    auth.Provider
	notices *notice.Queue
}

func New(store *collection.Store, gw gateway.Gateway, provider auth.Provider, notices *notice.Queue) *Engine {
	return &Engine{
		store:   store,
		gw:      gw,
		auth:    provider,
		notices: notices,
	}
}

func (e *Engine) Store() *collection.Store { return e.store }
func (e *Engine) Notices() *notice.Queue   { return e.notices }

// online reports whether remote persistence applies: a signed-in identity
// and a configured gateway. Anonymous sessions work purely in memory.
func (e *Engine) online() bool {
	return e.gw != nil && e.auth.Current() != nil
}

// Load fetches the signed-in user's collection. Malformed records are
// logged and skipped one by one; a single bad record never aborts the
// load.
func (e *Engine) Load(ctx context.Context) error {
	if !e.online() {
		return nil
	}

	recs, err := e.gw.List(ctx, e.auth.Current().Sub)
	if err != nil {
		log.Errorf("failed to list notes: %v", err)
		e.notices.Push(NoticeFailure)
		return err
	}

	notes := make([]*entity.Note, 0, len(recs))
	for _, rec := range recs {
		note, perr := entity.ParseNoteRecord(rec)
		if perr != nil {
			log.Warnf("skipping malformed note record: %v", perr)
			continue
		}
		notes = append(notes, note)
	}
	e.store.Replace(notes)
	return nil
}

// CommitCreate closes the composer session. An entirely blank draft is
// discarded; anything else becomes a new note, prepended optimistically
// under a temporary id and swapped for the server copy once the create
// call round-trips.
func (e *Engine) CommitCreate(ctx context.Context, sess *session.Session) (*entity.Note, error) {
	draft, err := sess.Close()
	if err != nil {
		return nil, err
	}

	if Decide(draft, nil) == ActionNone {
		e.notices.Push(NoticeEmptyDiscarded)
		return nil, nil
	}

	note := entity.NewNote("local-" + uuid.NewString())
	note.Title = draft.Title
	note.Content = draft.Content

	e.store.Prepend(note)
	if !e.online() {
		return note, nil
	}

	created, gerr := e.gw.Create(ctx, note.Record())
	if gerr != nil {
		e.store.Remove(note.ID)
		e.fail("create", gerr)
		return nil, gerr
	}

	persisted, perr := entity.ParseNoteRecord(created)
	if perr != nil {
		e.store.Remove(note.ID)
		e.fail("create", perr)
		return nil, perr
	}

	e.store.Swap(note.ID, persisted)
	return persisted, nil
}

// CommitEdit closes a modal edit session over an existing note. A draft
// identical to the snapshot issues zero gateway calls. A draft emptied to
// nothing deletes the note instead of persisting a blank one.
func (e *Engine) CommitEdit(ctx context.Context, sess *session.Session) error {
	draft, err := sess.Close()
	if err != nil {
		return err
	}

	snapshot, ok := e.store.Get(sess.NoteID())
	if !ok {
		return ErrNoteNotFound
	}

	switch Decide(draft, snapshot) {
	case ActionNone:
		return nil

	case ActionDelete:
		return e.remove(ctx, snapshot.ID, NoticeDeleted)

	default:
		updated := snapshot.Clone()
		updated.Title = draft.Title
		updated.Content = draft.Content
		return e.apply(ctx, updated, snapshot)
	}
}

// ToggleArchive flips the archive flag, clearing the pin when archiving.
// Like all flag toggles it is a fire-and-forget update issued immediately,
// not deferred to session close.
func (e *Engine) ToggleArchive(ctx context.Context, id string) error {
	return e.toggle(ctx, id, func(n *entity.Note) {
		n.SetArchived(!n.Archived)
	})
}

// TogglePin flips the pin flag, clearing the archive flag when pinning.
func (e *Engine) TogglePin(ctx context.Context, id string) error {
	return e.toggle(ctx, id, func(n *entity.Note) {
		n.SetPinned(!n.Pinned)
	})
}

// SetColor applies a palette pair. A color-only change is a real update,
// never a no-op.
func (e *Engine) SetColor(ctx context.Context, id string, color entity.NoteColor) error {
	if !color.ValidLight() {
		return ErrUnknownColor
	}
	return e.toggle(ctx, id, func(n *entity.Note) {
		n.SetColor(color)
	})
}

// SetReminder sets the reminder timestamp (UTC millis).
func (e *Engine) SetReminder(ctx context.Context, id string, at int64) error {
	if at <= 0 {
		return ErrInvalidReminder
	}
	return e.toggle(ctx, id, func(n *entity.Note) {
		n.Reminder = &at
	})
}

// ClearReminder removes the reminder; nil is the one canonical "no
// reminder" value.
func (e *Engine) ClearReminder(ctx context.Context, id string) error {
	return e.toggle(ctx, id, func(n *entity.Note) {
		n.Reminder = nil
	})
}

// MoveToTrash sends a note to the trash from any non-trashed state.
func (e *Engine) MoveToTrash(ctx context.Context, id string) error {
	snapshot, ok := e.store.Get(id)
	if !ok {
		return ErrNoteNotFound
	}
	if snapshot.Trashed {
		return nil
	}

	updated := snapshot.Clone()
	updated.Trashed = true
	if err := e.apply(ctx, updated, snapshot); err != nil {
		return err
	}
	e.notices.Push(NoticeTrashed)
	return nil
}

// Restore brings a trashed note back to the read state.
func (e *Engine) Restore(ctx context.Context, id string) error {
	snapshot, ok := e.store.Get(id)
	if !ok {
		return ErrNoteNotFound
	}
	if !snapshot.Trashed {
		return nil
	}

	updated := snapshot.Clone()
	updated.Trashed = false
	if err := e.apply(ctx, updated, snapshot); err != nil {
		return err
	}
	e.notices.Push(NoticeRestored)
	return nil
}

// HardDelete destroys a note permanently. It is only reachable from the
// trash; anywhere else it is rejected with a notice and no state change.
func (e *Engine) HardDelete(ctx context.Context, id string) error {
	snapshot, ok := e.store.Get(id)
	if !ok {
		return ErrNoteNotFound
	}
	if !snapshot.Trashed {
		e.notices.Push("Only trashed notes can be deleted permanently")
		return session.ErrHardDeleteOutsideTrash
	}
	return e.remove(ctx, id, NoticeDeleted)
}

// toggle runs an immediate optimistic update of a single note. Trashed
// notes are immutable except for restore and hard delete.
func (e *Engine) toggle(ctx context.Context, id string, mutate func(*entity.Note)) error {
	snapshot, ok := e.store.Get(id)
	if !ok {
		return ErrNoteNotFound
	}
	if snapshot.Trashed {
		e.notices.Push(NoticeTrashedEdit)
		return session.ErrTrashedNote
	}

	updated := snapshot.Clone()
	mutate(updated)
	return e.apply(ctx, updated, snapshot)
}

// apply replaces the collection entry optimistically, then persists. On
// gateway failure the entry reverts to the pre-call snapshot.
func (e *Engine) apply(ctx context.Context, updated, snapshot *entity.Note) error {
	e.store.Update(updated)
	if !e.online() {
		return nil
	}

	if err := e.gw.Update(ctx, updated.ID, updated.Record()); err != nil {
		e.store.Update(snapshot)
		e.fail("update", err)
		return err
	}
	return nil
}

// remove deletes the entry optimistically, remembering its position so a
// failed gateway call can reinsert it where it was.
func (e *Engine) remove(ctx context.Context, id, successNotice string) error {
	removed, at, ok := e.store.Remove(id)
	if !ok {
		return ErrNoteNotFound
	}
	if !e.online() {
		e.notices.Push(successNotice)
		return nil
	}

	if err := e.gw.Delete(ctx, id); err != nil {
		e.store.Insert(removed, at)
		e.fail("delete", err)
		return err
	}
	e.notices.Push(successNotice)
	return nil
}

func (e *Engine) fail(op string, err error) {
	log.Errorf("failed to %s note: %v", op, err)
	e.notices.Push(NoticeFailure)
}
