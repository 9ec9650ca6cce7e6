package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/pkg/ctxutil"
)

// TogglePin flips the pinned flag. Concurrent toggles are last-write-wins.
func (s *Service) TogglePin(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.toggle(ctx, noteID, func(n *domain.Note) domain.NotePatch {
		v := !n.Pinned
		return domain.NotePatch{Pinned: &v}
	})
}

// ToggleArchive flips the archived flag. Concurrent toggles are last-write-wins.
func (s *Service) ToggleArchive(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	return s.toggle(ctx, noteID, func(n *domain.Note) domain.NotePatch {
		v := !n.Archived
		return domain.NotePatch{Archived: &v}
	})
}

func (s *Service) toggle(ctx context.Context, noteID uuid.UUID, flip func(*domain.Note) domain.NotePatch) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	updated, err := s.notes.Update(ctx, userID, noteID, flip(current))
	if err != nil {
		return nil, fmt.Errorf("toggle note: %w", err)
	}
	return updated, nil
}
