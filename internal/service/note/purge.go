package note

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// PurgeTrashed permanently removes notes of every owner that were moved to
// the trash before the given time.
func (s *Service) PurgeTrashed(ctx context.Context, before time.Time) (int64, error) {
	n, err := s.notes.PurgeTrashed(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("purge trashed notes: %w", err)
	}

	s.log.InfoContext(ctx, "trashed notes purged",
		slog.Int64("count", n),
		slog.Time("before", before),
	)
	return n, nil
}

// RetentionCutoff returns the time before which trashed notes are purged.
func (s *Service) RetentionCutoff() time.Time {
	return s.now().Add(-time.Duration(s.cfg.TrashRetentionDays) * 24 * time.Hour)
}
