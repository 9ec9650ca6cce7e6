package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/pkg/ctxutil"
)

// Create stores a new active note for the owner. Title and content are
// stored exactly as given.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	color, _ := domain.ParseColor(input.Color)
	now := s.now()

	created, err := s.notes.Create(ctx, &domain.Note{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID.String()),
		slog.String("note_id", created.ID.String()),
	)

	return created, nil
}
