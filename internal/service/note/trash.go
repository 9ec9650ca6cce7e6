package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/pkg/ctxutil"
)

// SoftDelete moves a note to the trash. A note already in the trash keeps
// its original DeletedAt. A missing or foreign note is ErrNotFound.
func (s *Service) SoftDelete(ctx context.Context, noteID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	current, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return fmt.Errorf("get note: %w", err)
	}
	if current.View() == domain.ViewTrash {
		return nil
	}

	if _, err := s.notes.Update(ctx, userID, noteID, s.withTrashed(domain.NotePatch{}, true)); err != nil {
		return fmt.Errorf("trash note: %w", err)
	}

	s.log.InfoContext(ctx, "note trashed",
		slog.String("user_id", userID.String()),
		slog.String("note_id", noteID.String()),
	)
	return nil
}

// Restore moves a note out of the trash back to the view its archived flag
// selects.
func (s *Service) Restore(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	restored, err := s.notes.Update(ctx, userID, noteID, s.withTrashed(domain.NotePatch{}, false))
	if err != nil {
		return nil, fmt.Errorf("restore note: %w", err)
	}
	return restored, nil
}

// PermanentDelete removes a note for good. Deleting a note that does not
// exist succeeds.
func (s *Service) PermanentDelete(ctx context.Context, noteID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.notes.Delete(ctx, userID, noteID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted permanently",
		slog.String("user_id", userID.String()),
		slog.String("note_id", noteID.String()),
	)
	return nil
}
