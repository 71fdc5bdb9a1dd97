package repository

import (
	"context"
	"errors"

	"quickchat/internal/domain"
	chat_errors "quickchat/pkg/errors"

	"firebase.google.com/go/v4/db"
)

// Realtime database layout.
const (
	usersPath         = "users"
	roomsPath         = "rooms"
	roomMessagesPath  = "messages"
	chatsPath         = "chats"
	chatMessagesChild = "messages"
)

// FirebaseStore keeps everything in a Firebase Realtime Database.
type FirebaseStore struct {
	client *db.Client
}

func NewFirebaseStore(client *db.Client) *FirebaseStore {
	return &FirebaseStore{client: client}
}

func (s *FirebaseStore) UserExists(ctx context.Context, uid string) (bool, error) {
	return s.exists(ctx, usersPath, uid)
}

func (s *FirebaseStore) CreateUser(ctx context.Context, uid string, u domain.User) error {
	return s.client.NewRef(usersPath).Child(uid).Set(ctx, u)
}

func (s *FirebaseStore) CreateRoom(ctx context.Context, room domain.Room) (string, error) {
	ref, err := s.client.NewRef(roomsPath).Push(ctx, room)
	if err != nil {
		return "", err
	}
	return ref.Key, nil
}

func (s *FirebaseStore) AddRoomMessage(ctx context.Context, roomID string, msg domain.RoomMessage) (string, error) {
	ref, err := s.client.NewRef(roomMessagesPath).Child(roomID).Push(ctx, msg)
	if err != nil {
		return "", err
	}
	return ref.Key, nil
}

func (s *FirebaseStore) RoomMessages(ctx context.Context, roomID string) (domain.MessageList, error) {
	var msgs domain.MessageList
	if err := s.client.NewRef(roomMessagesPath).Child(roomID).Get(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *FirebaseStore) ChatExists(ctx context.Context, key string) (bool, error) {
	return s.exists(ctx, chatsPath, key)
}

var errChatExists = errors.New("chat node is not empty")

func (s *FirebaseStore) CreateChat(ctx context.Context, key string, chat domain.Chat) error {
	err := s.client.NewRef(chatsPath).Child(key).Transaction(ctx, func(node db.TransactionNode) (interface{}, error) {
		var current interface{}
		if err := node.Unmarshal(&current); err != nil {
			return nil, err
		}
		if current != nil {
			return nil, errChatExists
		}
		return chat, nil
	})
	if errors.Is(err, errChatExists) {
		return chat_errors.ErrAlreadyExists
	}
	return err
}

func (s *FirebaseStore) AddChatMessage(ctx context.Context, key string, msg domain.DirectMessage) (string, error) {
	ref, err := s.client.NewRef(chatsPath).Child(key).Child(chatMessagesChild).Push(ctx, msg)
	if err != nil {
		return "", err
	}
	return ref.Key, nil
}

func (s *FirebaseStore) ChatMessages(ctx context.Context, key string) (domain.MessageList, error) {
	var msgs domain.MessageList
	if err := s.client.NewRef(chatsPath).Child(key).Child(chatMessagesChild).Get(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Ping does a shallow read of the root, the cheapest authenticated request.
func (s *FirebaseStore) Ping(ctx context.Context) error {
	var v interface{}
	return s.client.NewRef("/").GetShallow(ctx, &v)
}

// exists does a shallow read so that a node with a large subtree is not
// downloaded just to test for presence. An empty id would address the parent
// collection itself, so it never exists.
func (s *FirebaseStore) exists(ctx context.Context, parent, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	var v interface{}
	if err := s.client.NewRef(parent).Child(id).GetShallow(ctx, &v); err != nil {
		return false, err
	}
	return v != nil, nil
}
