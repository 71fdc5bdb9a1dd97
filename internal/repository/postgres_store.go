package repository

import (
	"context"
	"encoding/json"

	"quickchat/internal/domain"
	chat_errors "quickchat/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is the self-hosted alternative to FirebaseStore. Push ids are
// UUIDv7 strings, so ordering by id is ordering by insertion time.
type PostgresStore struct {
	pool *pgxpool.Pool
	db   DBTX
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool, db: pool}
}

func (s *PostgresStore) UserExists(ctx context.Context, uid string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE uid = $1)`, uid,
	).Scan(&exists)
	return exists, err
}

func (s *PostgresStore) CreateUser(ctx context.Context, uid string, u domain.User) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO users (uid, username, email) VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO UPDATE SET username = EXCLUDED.username, email = EXCLUDED.email`,
		uid, u.Username, u.Email,
	)
	return err
}

func (s *PostgresStore) CreateRoom(ctx context.Context, room domain.Room) (string, error) {
	id, err := newPushID()
	if err != nil {
		return "", err
	}
	members := room.Members
	if members == nil {
		members = []string{}
	}
	_, err = s.db.Exec(ctx,
		`INSERT INTO rooms (id, name, created_by, members) VALUES ($1, $2, $3, $4)`,
		id, room.Name, room.CreatedBy, members,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) AddRoomMessage(ctx context.Context, roomID string, msg domain.RoomMessage) (string, error) {
	return s.appendMessage(ctx, `INSERT INTO room_messages (id, room_id, body) VALUES ($1, $2, $3)`, roomID, msg)
}

func (s *PostgresStore) RoomMessages(ctx context.Context, roomID string) (domain.MessageList, error) {
	return s.messageList(ctx, `
		SELECT COALESCE(jsonb_object_agg(id, body), 'null'::jsonb)::text
		FROM room_messages WHERE room_id = $1`, roomID)
}

// ChatExists also counts messages appended to a chat that was never created,
// matching a node lookup in the realtime database.
func (s *PostgresStore) ChatExists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM chats WHERE key = $1)
		    OR EXISTS (SELECT 1 FROM chat_messages WHERE chat_key = $1)`, key,
	).Scan(&exists)
	return exists, err
}

func (s *PostgresStore) CreateChat(ctx context.Context, key string, chat domain.Chat) error {
	tag, err := s.db.Exec(ctx, `
		INSERT INTO chats (key, participants, created_at)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (SELECT 1 FROM chat_messages WHERE chat_key = $1)
		ON CONFLICT (key) DO NOTHING`,
		key, chat.Participants, chat.CreatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return chat_errors.ErrAlreadyExists
	}
	return nil
}

func (s *PostgresStore) AddChatMessage(ctx context.Context, key string, msg domain.DirectMessage) (string, error) {
	return s.appendMessage(ctx, `INSERT INTO chat_messages (id, chat_key, body) VALUES ($1, $2, $3)`, key, msg)
}

func (s *PostgresStore) ChatMessages(ctx context.Context, key string) (domain.MessageList, error) {
	return s.messageList(ctx, `
		SELECT COALESCE(jsonb_object_agg(id, body), 'null'::jsonb)::text
		FROM chat_messages WHERE chat_key = $1`, key)
}

// appendMessage stores msg as a JSONB document under a new push id.
func (s *PostgresStore) appendMessage(ctx context.Context, query, parent string, msg any) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	id, err := newPushID()
	if err != nil {
		return "", err
	}
	if _, err := s.db.Exec(ctx, query, id, parent, string(body)); err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) messageList(ctx context.Context, query, parent string) (domain.MessageList, error) {
	var list string
	if err := s.db.QueryRow(ctx, query, parent).Scan(&list); err != nil {
		return nil, err
	}
	return domain.MessageList(list), nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
