package services

import (
	"context"
	"errors"
	"fmt"

	"quickchat/internal/domain"
	"quickchat/internal/events"
	"quickchat/internal/repository"
	chat_errors "quickchat/pkg/errors"
	"quickchat/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type ChatService struct {
	users repository.UserRepository
	chats repository.ChatRepository
	bus   events.Bus
	log   *logger.Logger
}

// NewChatService builds the service. bus may be nil when live updates are off.
func NewChatService(users repository.UserRepository, chats repository.ChatRepository, bus events.Bus, log *logger.Logger) *ChatService {
	return &ChatService{users: users, chats: chats, bus: bus, log: log}
}

type CreateChatInput struct {
	From string
	To   string
}

type ChatMessageInput struct {
	From    any
	Message any
}

// CreateChat opens the direct chat between From and To and returns its key.
func (s *ChatService) CreateChat(ctx context.Context, in CreateChatInput) (string, error) {
	var fromExists, toExists bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fromExists, err = s.users.UserExists(gctx, in.From)
		return err
	})
	g.Go(func() error {
		var err error
		toExists, err = s.users.UserExists(gctx, in.To)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", chat_errors.Internal("Error checking users", err)
	}

	switch {
	case !fromExists && !toExists:
		return "", chat_errors.NotFound(fmt.Sprintf("Users %s and %s not found", in.From, in.To))
	case !fromExists:
		return "", chat_errors.NotFound(fmt.Sprintf("User %s not found", in.From))
	case !toExists:
		return "", chat_errors.NotFound(fmt.Sprintf("User %s not found", in.To))
	}

	key := domain.ChatKey(in.From, in.To)
	exists, err := s.chats.ChatExists(ctx, key)
	if err != nil {
		return "", chat_errors.Internal("Error checking chat room", err)
	}
	if exists {
		return "", chat_errors.AlreadyExists("Chat already exists")
	}

	chat := domain.Chat{
		Participants: []string{in.From, in.To},
		CreatedAt:    domain.NowMillis(),
	}
	if err := s.chats.CreateChat(ctx, key, chat); err != nil {
		// Lost a race with a concurrent creator.
		if errors.Is(err, chat_errors.ErrAlreadyExists) {
			return "", chat_errors.AlreadyExists("Chat already exists")
		}
		return "", chat_errors.Internal("Error creating chat", err)
	}
	return key, nil
}

func (s *ChatService) SendMessage(ctx context.Context, chatKey string, in ChatMessageInput) (string, error) {
	msg := domain.DirectMessage{
		From:      in.From,
		Message:   in.Message,
		Timestamp: domain.NowMillis(),
	}
	id, err := s.chats.AddChatMessage(ctx, chatKey, msg)
	if err != nil {
		return "", chat_errors.Internal("Error sending message", err)
	}
	publish(ctx, s.bus, s.log, events.EventChatMessage, chatKey, id, msg)
	return id, nil
}

func (s *ChatService) Messages(ctx context.Context, chatKey string) (domain.MessageList, error) {
	msgs, err := s.chats.ChatMessages(ctx, chatKey)
	if err != nil {
		return nil, chat_errors.Internal("Error fetching messages", err)
	}
	if domain.EmptyMessageList(msgs) {
		return nil, chat_errors.NotFound("No messages found")
	}
	return msgs, nil
}
