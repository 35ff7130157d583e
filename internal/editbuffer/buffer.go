// Package editbuffer keeps a linear undo/redo history for one free-text
// field during a single edit session. Writing after an undo discards the
// redo future, standard editor semantics.
package editbuffer

import "unicode/utf8"

// Buffer holds the history for one field. A session owns two independent
// buffers (title and content); their cursors never couple.
type Buffer struct {
	history []string
	cursor  int
	limit   int
}

// New starts a buffer at initialValue. limit caps the length of accepted
// values in runes, the same unit the record validation counts; 0 means
// unlimited.
func New(initialValue string, limit int) *Buffer {
	return &Buffer{
		history: []string{initialValue},
		limit:   limit,
	}
}

// Value returns the entry under the cursor.
func (b *Buffer) Value() string {
	return b.history[b.cursor]
}

// Write truncates any redo future, appends value and moves the cursor to
// it. Values beyond the configured limit are rejected without mutating
// history; the return value reports acceptance.
func (b *Buffer) Write(value string) bool {
	if b.limit > 0 && utf8.RuneCountInString(value) > b.limit {
		return false
	}
	b.history = append(b.history[:b.cursor+1], value)
	b.cursor = len(b.history) - 1
	return true
}

// Undo steps the cursor back and returns the value it lands on. At the
// start of history it is a no-op and returns the current value.
func (b *Buffer) Undo() string {
	if b.cursor > 0 {
		b.cursor--
	}
	return b.history[b.cursor]
}

// Redo steps the cursor forward, a no-op at the end of history.
func (b *Buffer) Redo() string {
	if b.cursor < len(b.history)-1 {
		b.cursor++
	}
	return b.history[b.cursor]
}

// Reset collapses the history to a single value. Called when the session
// closes.
func (b *Buffer) Reset(value string) {
	b.history = []string{value}
	b.cursor = 0
}

func (b *Buffer) CanUndo() bool {
	return b.cursor > 0
}

func (b *Buffer) CanRedo() bool {
	return b.cursor < len(b.history)-1
}
