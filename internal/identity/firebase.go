package identity

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

const googleProviderID = "google.com"

// userCreator is the slice of *auth.Client the provider needs.
type userCreator interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
}

// FirebaseProvider delegates to Firebase Authentication.
type FirebaseProvider struct {
	users   userCreator
	toolkit *Toolkit
}

func NewFirebaseProvider(client *auth.Client, toolkit *Toolkit) *FirebaseProvider {
	return &FirebaseProvider{users: client, toolkit: toolkit}
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	record, err := p.users.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}
	return record.UID, nil
}

func (p *FirebaseProvider) SignInWithPassword(ctx context.Context, email, password string) (string, error) {
	return p.toolkit.SignInWithPassword(ctx, email, password)
}

func (p *FirebaseProvider) SignInWithGoogle(ctx context.Context, idToken string) (string, error) {
	return p.toolkit.SignInWithIdp(ctx, googleProviderID, idToken)
}
