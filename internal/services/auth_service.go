package services

import (
	"context"

	"quickchat/internal/domain"
	"quickchat/internal/identity"
	"quickchat/internal/repository"
	chat_errors "quickchat/pkg/errors"
)

type AuthService struct {
	identity identity.Provider
	users    repository.UserRepository
}

func NewAuthService(provider identity.Provider, users repository.UserRepository) *AuthService {
	return &AuthService{identity: provider, users: users}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
}

type LoginInput struct {
	Email       string
	Password    string
	GoogleToken string
}

type LoginMethod int

const (
	LoginWithPassword LoginMethod = iota
	LoginWithGoogle
)

// Register creates the identity, then the profile. A failed profile write
// leaves the identity in place.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	uid, err := s.identity.CreateUser(ctx, in.Email, in.Password)
	if err != nil {
		return chat_errors.Internal("Error registering user", err)
	}

	profile := domain.User{Username: in.Username, Email: in.Email}
	if err := s.users.CreateUser(ctx, uid, profile); err != nil {
		return chat_errors.Internal("Error creating user profile", err)
	}
	return nil
}

// Login takes the Google path whenever a token is supplied, ignoring any
// email and password in the same request.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (LoginMethod, error) {
	if in.GoogleToken != "" {
		if _, err := s.identity.SignInWithGoogle(ctx, in.GoogleToken); err != nil {
			return LoginWithGoogle, chat_errors.Internal("Error logging in with Google", err)
		}
		return LoginWithGoogle, nil
	}

	if _, err := s.identity.SignInWithPassword(ctx, in.Email, in.Password); err != nil {
		return LoginWithPassword, chat_errors.Internal("Error logging in user", err)
	}
	return LoginWithPassword, nil
}
