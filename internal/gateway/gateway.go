// Package gateway defines the remote document-store operations the
// reconciliation engine depends on, and an HTTP client implementing them.
// Every call is an at-least-once network operation that can fail; the
// caller owns optimistic rollback.
package gateway

import (
	"context"
	"fmt"

	"notekeep/internal/domain/entity"
)

// Gateway is the remote sync contract, one note per call. List returns the
// caller's full collection ordered by createdAt descending.
type Gateway interface {
	Create(ctx context.Context, draft *entity.NoteRecord) (*entity.NoteRecord, error)
	Update(ctx context.Context, id string, rec *entity.NoteRecord) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, userID string) ([]*entity.NoteRecord, error)
}

// ErrorKind classifies gateway failures for display and test purposes. The
// engine treats them all the same way: roll back and show a notice.
type ErrorKind string

const (
	KindNetwork    ErrorKind = "NETWORK"
	KindPermission ErrorKind = "PERMISSION"
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindInvalid    ErrorKind = "INVALID"
)

type GatewayError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("gateway %s: %s", e.Kind, e.Message)
}
