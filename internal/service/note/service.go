// Package note implements the note lifecycle and query engine.
package note

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/config"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// CopySuffix is appended to the title of a duplicated note.
const CopySuffix = " (Copy)"

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type noteStore interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.Note, error)
	GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, userID, noteID uuid.UUID, patch domain.NotePatch) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
	PurgeTrashed(ctx context.Context, before time.Time) (int64, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements note operations on behalf of the owner found in ctx.
type Service struct {
	log   *slog.Logger
	notes noteStore
	cfg   config.NotesConfig
	now   func() time.Time
}

// NewService creates a new note service.
func NewService(logger *slog.Logger, notes noteStore, cfg config.NotesConfig) *Service {
	return &Service{
		log:   logger.With("service", "note"),
		notes: notes,
		cfg:   cfg,
		now:   time.Now,
	}
}
