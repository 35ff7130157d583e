// Package auth gates whether the reconciliation engine talks to the remote
// store at all. An anonymous identity keeps every note operation
// local-only for the session.
package auth

import (
	"context"
	"errors"
)

// Identity is the signed-in user as seen by the client core.
type Identity struct {
	Sub   string
	Email string
}

// Provider exposes the current identity and the sign-in/out passthroughs
// of the external identity provider. Current returning nil means
// anonymous.
type Provider interface {
	Current() *Identity
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
}

// Errors mapped from identity-provider failures.
var (
	ErrInvalidPassword     = errors.New("provided password does not meet requirements")
	ErrEmailExists         = errors.New("email already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserNotConfirmed    = errors.New("user is not confirmed yet")
	ErrCredentialsMismatch = errors.New("credentials mismatch")
	ErrCodeMismatch        = errors.New("confirmation code mismatch")
	ErrCodeExpired         = errors.New("confirmation code has expired")
)

// Anonymous is the no-identity provider: all operations stay in memory and
// the gateway is never called.
type Anonymous struct{}

func (Anonymous) Current() *Identity { return nil }

func (Anonymous) SignIn(context.Context, string, string) error {
	return errors.New("anonymous provider cannot sign in")
}

func (Anonymous) SignOut(context.Context) error { return nil }
