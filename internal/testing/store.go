// Package chattest provides in-memory stand-ins for the store, the identity
// provider and the event bus, with failure injection.
package chattest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"quickchat/internal/domain"
	chat_errors "quickchat/pkg/errors"
)

// Store operations that can be made to fail with FailOn.
const (
	OpUserExists     = "UserExists"
	OpCreateUser     = "CreateUser"
	OpCreateRoom     = "CreateRoom"
	OpAddRoomMessage = "AddRoomMessage"
	OpRoomMessages   = "RoomMessages"
	OpChatExists     = "ChatExists"
	OpCreateChat     = "CreateChat"
	OpAddChatMessage = "AddChatMessage"
	OpChatMessages   = "ChatMessages"
	OpPing           = "Ping"
)

// MemoryStore implements repository.Store over maps.
type MemoryStore struct {
	mu           sync.Mutex
	users        map[string]domain.User
	rooms        map[string]domain.Room
	roomMessages map[string]map[string]json.RawMessage
	chats        map[string]domain.Chat
	chatMessages map[string]map[string]json.RawMessage
	failures     map[string]error
	seq          int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        map[string]domain.User{},
		rooms:        map[string]domain.Room{},
		roomMessages: map[string]map[string]json.RawMessage{},
		chats:        map[string]domain.Chat{},
		chatMessages: map[string]map[string]json.RawMessage{},
		failures:     map[string]error{},
	}
}

// FailOn makes every later call of op return err. A nil err clears it.
func (s *MemoryStore) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// AddUser seeds a profile.
func (s *MemoryStore) AddUser(uid string, u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[uid] = u
}

func (s *MemoryStore) User(uid string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uid]
	return u, ok
}

func (s *MemoryStore) Rooms() map[string]domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.Room, len(s.rooms))
	for k, v := range s.rooms {
		out[k] = v
	}
	return out
}

func (s *MemoryStore) Chat(key string) (domain.Chat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chats[key]
	return c, ok
}

// SeedRoomMessage stores raw under roomID as if another client had written it.
func (s *MemoryStore) SeedRoomMessage(roomID, id string, raw json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appendRaw(s.roomMessages, roomID, id, raw)
}

func (s *MemoryStore) fail(op string) error {
	return s.failures[op]
}

// nextID returns zero-padded ids so lexical order is insertion order.
func (s *MemoryStore) nextID() string {
	s.seq++
	return fmt.Sprintf("-m%08d", s.seq)
}

func (s *MemoryStore) UserExists(_ context.Context, uid string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(OpUserExists); err != nil {
		return false, err
	}
	_, ok := s.users[uid]
	return ok, nil
}

func (s *MemoryStore) CreateUser(_ context.Context, uid string, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(OpCreateUser); err != nil {
		return err
	}
	s.users[uid] = u
	return nil
}

func (s *MemoryStore) CreateRoom(_ context.Context, room domain.Room) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(OpCreateRoom); err != nil {
		return "", err
	}
	id := s.nextID()
	s.rooms[id] = room
	return id, nil
}

func (s *MemoryStore) AddRoomMessage(_ context.Context, roomID string, msg domain.RoomMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(OpAddRoomMessage); err != nil {
		return "", err
	}
	return s.appendMessage(s.roomMessages, roomID, msg)
}

func (s *MemoryStore) RoomMessages(_ context.Context, roomID string) (domain.MessageList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(OpRoomMessages); err != nil {
		return nil, err
	}
	return messageList(s.roomMessages[roomID])
}

// ChatExists sees messages appended without a chat record, like a node lookup.
func (s *MemoryStore) ChatExists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(OpChatExists); err != nil {
		return false, err
	}
	return s.chatExists(key), nil
}

func (s *MemoryStore) CreateChat(_ context.Context, key string, chat domain.Chat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(OpCreateChat); err != nil {
		return err
	}
	if s.chatExists(key) {
		return chat_errors.ErrAlreadyExists
	}
	s.chats[key] = chat
	return nil
}

func (s *MemoryStore) chatExists(key string) bool {
	_, ok := s.chats[key]
	return ok || len(s.chatMessages[key]) > 0
}

func (s *MemoryStore) AddChatMessage(_ context.Context, key string, msg domain.DirectMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(OpAddChatMessage); err != nil {
		return "", err
	}
	return s.appendMessage(s.chatMessages, key, msg)
}

func (s *MemoryStore) ChatMessages(_ context.Context, key string) (domain.MessageList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(OpChatMessages); err != nil {
		return nil, err
	}
	return messageList(s.chatMessages[key])
}

func (s *MemoryStore) appendMessage(lists map[string]map[string]json.RawMessage, parent string, msg any) (string, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	id := s.nextID()
	appendRaw(lists, parent, id, raw)
	return id, nil
}

func appendRaw(lists map[string]map[string]json.RawMessage, parent, id string, raw json.RawMessage) {
	if lists[parent] == nil {
		lists[parent] = map[string]json.RawMessage{}
	}
	lists[parent][id] = raw
}

// messageList encodes a list the way the realtime database returns it: null
// when empty.
func messageList(msgs map[string]json.RawMessage) (domain.MessageList, error) {
	if len(msgs) == 0 {
		return domain.MessageList("null"), nil
	}
	return json.Marshal(msgs)
}

func (s *MemoryStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fail(OpPing)
}
