package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$placeholderplaceholderpl",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// NoteOption customizes a note created by SeedNote.
type NoteOption func(n *domain.Note)

// WithTitle sets the seeded note's title.
func WithTitle(title string) NoteOption {
	return func(n *domain.Note) { n.Title = title }
}

// WithContent sets the seeded note's content.
func WithContent(content string) NoteOption {
	return func(n *domain.Note) { n.Content = content }
}

// Pinned marks the seeded note as pinned.
func Pinned() NoteOption {
	return func(n *domain.Note) { n.Pinned = true }
}

// Archived marks the seeded note as archived.
func Archived() NoteOption {
	return func(n *domain.Note) { n.Archived = true }
}

// Trashed moves the seeded note to trash at the given time.
func Trashed(at time.Time) NoteOption {
	return func(n *domain.Note) {
		at := at.UTC().Truncate(time.Microsecond)
		n.Trashed = true
		n.DeletedAt = &at
	}
}

// CreatedAt overrides the seeded note's creation time.
func CreatedAt(at time.Time) NoteOption {
	return func(n *domain.Note) {
		n.CreatedAt = at.UTC().Truncate(time.Microsecond)
		n.UpdatedAt = n.CreatedAt
	}
}

// SeedNote inserts a note owned by userID and returns it.
func SeedNote(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, opts ...NoteOption) domain.Note {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	note := domain.Note{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Note " + uniqueSuffix(),
		Content:   "content",
		Color:     domain.ColorDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&note)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notes (id, user_id, title, content, pinned, color, archived, trashed, deleted_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		note.ID, note.UserID, note.Title, note.Content, note.Pinned, note.Color.String(),
		note.Archived, note.Trashed, note.DeletedAt, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert: %v", err)
	}

	return note
}
