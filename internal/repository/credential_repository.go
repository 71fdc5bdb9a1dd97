package repository

import (
	"context"
	"errors"
	"time"

	chat_errors "quickchat/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Credential is a self-hosted sign-in identity. PasswordHash is empty for
// identities created through Google sign-in; GoogleSubject is empty for
// email/password identities.
type Credential struct {
	UID           string
	Email         string
	PasswordHash  string
	GoogleSubject string
	CreatedAt     time.Time
}

type PostgresCredentialRepository struct {
	db DBTX
}

func NewCredentialRepository(db DBTX) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{db: db}
}

func (r *PostgresCredentialRepository) CreateCredential(ctx context.Context, cred Credential) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO credentials (uid, email, password_hash) VALUES ($1, $2, $3)`,
		cred.UID, cred.Email, cred.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return chat_errors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PostgresCredentialRepository) GetCredentialByEmail(ctx context.Context, email string) (Credential, error) {
	var c Credential
	var hash, subject *string
	err := r.db.QueryRow(ctx, `
		SELECT uid, email, password_hash, google_subject, created_at
		FROM credentials WHERE email = $1`, email,
	).Scan(&c.UID, &c.Email, &hash, &subject, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Credential{}, chat_errors.ErrNotFound
		}
		return Credential{}, err
	}
	if hash != nil {
		c.PasswordHash = *hash
	}
	if subject != nil {
		c.GoogleSubject = *subject
	}
	return c, nil
}

// GetOrCreateGoogleCredential returns the identity linked to the Google
// subject, creating it on first sign-in.
func (r *PostgresCredentialRepository) GetOrCreateGoogleCredential(ctx context.Context, subject, email string) (Credential, error) {
	c := Credential{GoogleSubject: subject}
	err := r.db.QueryRow(ctx, `
		INSERT INTO credentials (uid, email, google_subject) VALUES ($1, NULLIF($2, ''), $3)
		ON CONFLICT (google_subject) DO UPDATE SET google_subject = EXCLUDED.google_subject
		RETURNING uid, COALESCE(email, ''), created_at`,
		uuid.NewString(), email, subject,
	).Scan(&c.UID, &c.Email, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Credential{}, chat_errors.ErrAlreadyExists
		}
		return Credential{}, err
	}
	return c, nil
}
