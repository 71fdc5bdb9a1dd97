package repository

import (
	"context"

	"quickchat/internal/domain"
)

type UserRepository interface {
	// UserExists reports whether a profile is stored under uid.
	UserExists(ctx context.Context, uid string) (bool, error)
	// CreateUser writes the profile under uid, replacing any previous one.
	CreateUser(ctx context.Context, uid string, u domain.User) error
}

type RoomRepository interface {
	// CreateRoom stores the room under a new push id and returns it.
	CreateRoom(ctx context.Context, room domain.Room) (string, error)
	AddRoomMessage(ctx context.Context, roomID string, msg domain.RoomMessage) (string, error)
	// RoomMessages returns the stored message list of the room unchanged; see
	// domain.EmptyMessageList for what counts as no messages.
	RoomMessages(ctx context.Context, roomID string) (domain.MessageList, error)
}

type ChatRepository interface {
	// ChatExists reports whether anything is stored under key, the chat record
	// or only messages appended to it.
	ChatExists(ctx context.Context, key string) (bool, error)
	// CreateChat writes the chat only if nothing is stored under key yet;
	// otherwise it returns chat_errors.ErrAlreadyExists.
	CreateChat(ctx context.Context, key string, chat domain.Chat) error
	AddChatMessage(ctx context.Context, key string, msg domain.DirectMessage) (string, error)
	ChatMessages(ctx context.Context, key string) (domain.MessageList, error)
}

// Store is everything the HTTP routes persist. Implemented by FirebaseStore and
// PostgresStore.
type Store interface {
	UserRepository
	RoomRepository
	ChatRepository
	Ping(ctx context.Context) error
}

// CredentialRepository backs the self-hosted identity provider.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, cred Credential) error
	GetCredentialByEmail(ctx context.Context, email string) (Credential, error)
	GetOrCreateGoogleCredential(ctx context.Context, subject, email string) (Credential, error)
}

var (
	_ Store                = (*FirebaseStore)(nil)
	_ Store                = (*PostgresStore)(nil)
	_ CredentialRepository = (*PostgresCredentialRepository)(nil)
)
