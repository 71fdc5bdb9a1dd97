package identity

import (
	"context"
	"errors"
	"fmt"

	"quickchat/internal/repository"
	chat_errors "quickchat/pkg/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// LocalProvider keeps identities in Postgres for deployments without Firebase.
// Google ID tokens are verified against googleClientID.
type LocalProvider struct {
	creds          repository.CredentialRepository
	googleClientID string
	validate       tokenValidator
}

func NewLocalProvider(creds repository.CredentialRepository, googleClientID string) *LocalProvider {
	return &LocalProvider{
		creds:          creds,
		googleClientID: googleClientID,
		validate:       idtoken.Validate,
	}
}

func (p *LocalProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("email and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	uid := uuid.NewString()
	err = p.creds.CreateCredential(ctx, repository.Credential{
		UID:          uid,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, chat_errors.ErrAlreadyExists) {
			return "", ErrEmailInUse
		}
		return "", err
	}
	return uid, nil
}

func (p *LocalProvider) SignInWithPassword(ctx context.Context, email, password string) (string, error) {
	cred, err := p.creds.GetCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, chat_errors.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	// Google-only identities have no password.
	if cred.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return cred.UID, nil
}

func (p *LocalProvider) SignInWithGoogle(ctx context.Context, idToken string) (string, error) {
	if p.googleClientID == "" {
		return "", errors.New("google sign-in is not configured")
	}
	payload, err := p.validate(ctx, idToken, p.googleClientID)
	if err != nil {
		return "", fmt.Errorf("invalid google token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	cred, err := p.creds.GetOrCreateGoogleCredential(ctx, payload.Subject, email)
	if err != nil {
		return "", err
	}
	return cred.UID, nil
}
