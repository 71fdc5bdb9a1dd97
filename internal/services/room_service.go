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

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type RoomService struct {
	users repository.UserRepository
	rooms repository.RoomRepository
	bus   events.Bus
	log   *logger.Logger

	// enforceCreator rejects rooms whose creator has no profile. Off by
	// default: an unknown creator is only logged.
	enforceCreator bool
}

// NewRoomService builds the service. bus may be nil when live updates are off.
func NewRoomService(users repository.UserRepository, rooms repository.RoomRepository, bus events.Bus, log *logger.Logger, enforceCreator bool) *RoomService {
	return &RoomService{
		users:          users,
		rooms:          rooms,
		bus:            bus,
		log:            log,
		enforceCreator: enforceCreator,
	}
}

var errMembersMissing = errors.New("members is missing")

// CreateRoomInput.Members must be non-nil; an empty list creates a room with
// no members.
type CreateRoomInput struct {
	Name      string
	CreatedBy string
	Members   []string
}

// RoomMessageInput carries the client's fields with whatever JSON types it
// sent; they are stored unchecked.
type RoomMessageInput struct {
	UserID   any
	Username any
	Message  any
}

func (s *RoomService) CreateRoom(ctx context.Context, in CreateRoomInput) (string, error) {
	creatorExists, err := s.users.UserExists(ctx, in.CreatedBy)
	if err != nil {
		return "", chat_errors.Internal("Error creating room", err)
	}
	if !creatorExists {
		if s.enforceCreator {
			return "", chat_errors.Forbidden("You are not authorized to create a room")
		}
		s.log.WarnCtx(ctx, "room creator has no profile",
			zap.String("room", in.Name),
			zap.String("created_by", in.CreatedBy),
		)
	}

	// A body without members never gets as far as a write.
	if in.Members == nil {
		return "", chat_errors.Internal("Error creating room", errMembersMissing)
	}

	missing, err := s.firstMissingMember(ctx, in.Members)
	if err != nil {
		return "", chat_errors.Internal("Error creating room", err)
	}
	if missing != "" {
		return "", chat_errors.NotFound(fmt.Sprintf("User %s not found", missing))
	}

	id, err := s.rooms.CreateRoom(ctx, domain.Room{
		Name:      in.Name,
		CreatedBy: in.CreatedBy,
		Members:   in.Members,
	})
	if err != nil {
		return "", chat_errors.Internal("Error creating room", err)
	}
	return id, nil
}

// firstMissingMember checks all members concurrently and returns the first
// one, in request order, that has no profile.
func (s *RoomService) firstMissingMember(ctx context.Context, members []string) (string, error) {
	found := make([]bool, len(members))
	g, gctx := errgroup.WithContext(ctx)
	for i, member := range members {
		i, member := i, member
		g.Go(func() error {
			exists, err := s.users.UserExists(gctx, member)
			if err != nil {
				return err
			}
			found[i] = exists
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	for i, ok := range found {
		if !ok {
			return members[i], nil
		}
	}
	return "", nil
}

func (s *RoomService) SendMessage(ctx context.Context, roomID string, in RoomMessageInput) (string, error) {
	msg := domain.RoomMessage{
		UserID:    in.UserID,
		Username:  in.Username,
		Message:   in.Message,
		Timestamp: domain.NowMillis(),
	}
	id, err := s.rooms.AddRoomMessage(ctx, roomID, msg)
	if err != nil {
		return "", chat_errors.Internal("Error sending message", err)
	}
	publish(ctx, s.bus, s.log, events.EventRoomMessage, roomID, id, msg)
	return id, nil
}

// Messages returns the room's message list as stored.
func (s *RoomService) Messages(ctx context.Context, roomID string) (domain.MessageList, error) {
	msgs, err := s.rooms.RoomMessages(ctx, roomID)
	if err != nil {
		return nil, chat_errors.Internal("Error fetching messages", err)
	}
	if domain.EmptyMessageList(msgs) {
		return nil, chat_errors.NotFound("No messages found")
	}
	return msgs, nil
}
