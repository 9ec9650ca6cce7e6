package note

import (
	"context"
	"fmt"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/pkg/ctxutil"
)

// Update applies a partial update. Moving a note into the trash stamps
// DeletedAt with the current time, moving it out clears it.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := domain.NotePatch{
		Title:   input.Title,
		Content: input.Content,
	}
	if input.Color != nil {
		c, _ := domain.ParseColor(*input.Color)
		patch.Color = &c
	}
	patch.Pinned = input.Pinned
	patch.Archived = input.Archived
	if input.Trashed != nil {
		patch = s.withTrashed(patch, *input.Trashed)
	}

	updated, err := s.notes.Update(ctx, userID, input.NoteID, patch)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return updated, nil
}

// withTrashed sets the trash flag and the matching timestamp on patch.
func (s *Service) withTrashed(patch domain.NotePatch, trashed bool) domain.NotePatch {
	patch.Trashed = &trashed
	patch.DeletedAt = nil
	if trashed {
		at := s.now()
		patch.DeletedAt = &at
	}
	return patch
}
