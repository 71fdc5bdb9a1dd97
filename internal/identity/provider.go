// Package identity issues and checks user identities. Sessions are out of
// scope: every call only returns the uid the identity is known by.
package identity

import (
	"context"
	"errors"
)

type Provider interface {
	// CreateUser registers a new email/password identity and returns its uid.
	CreateUser(ctx context.Context, email, password string) (string, error)
	SignInWithPassword(ctx context.Context, email, password string) (string, error)
	// SignInWithGoogle exchanges a Google ID token for an identity, creating
	// the identity on first use.
	SignInWithGoogle(ctx context.Context, idToken string) (string, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
)
