package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/pkg/ctxutil"
)

// List returns the owner's notes in one view, pinned first, then newest
// first. The result is never nil.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxSearchLength); err != nil {
		return nil, err
	}

	notes, err := s.notes.List(ctx, userID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	return notes, nil
}

// Get returns a single note of the owner.
func (s *Service) Get(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}
