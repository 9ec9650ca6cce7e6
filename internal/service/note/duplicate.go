package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/pkg/ctxutil"
)

// Duplicate creates an independent active copy of a note in any view.
func (s *Service) Duplicate(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	src, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	now := s.now()
	dup, err := s.notes.Create(ctx, &domain.Note{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     src.Title + CopySuffix,
		Content:   src.Content,
		Color:     src.Color,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create duplicate: %w", err)
	}
	return dup, nil
}
