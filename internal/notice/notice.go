// Package notice is the single transient, dismissible message line used to
// surface outcomes like "Note deleted" or a gateway failure. Only the most
// recent message is kept.
package notice

import "sync"

type Queue struct {
	mu      sync.Mutex
	message string
	present bool
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push replaces whatever message is currently shown.
func (q *Queue) Push(message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.message = message
	q.present = true
}

// Current returns the visible message, if any.
func (q *Queue) Current() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.message, q.present
}

func (q *Queue) Dismiss() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.message = ""
	q.present = false
}
