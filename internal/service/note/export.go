package note

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
	"github.com/heartmarshall/notekeeper-backend/pkg/ctxutil"
)

// ExportResult is a rendered export ready to be served as a download.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
	Count       int
}

// ExportedNote is the JSON shape of one exported note.
type ExportedNote struct {
	ID        uuid.UUID  `json:"_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Pinned    bool       `json:"pinned"`
	Color     string     `json:"color"`
	Archived  bool       `json:"archived"`
	Trashed   bool       `json:"trashed"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Export lists a view, shapes it with DerivedView, optionally narrows it to
// the selected ids and renders it in the requested format.
func (s *Service) Export(ctx context.Context, input ExportInput) (*ExportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxSearchLength); err != nil {
		return nil, err
	}

	listed, err := s.notes.List(ctx, userID, ListInput{View: input.View, Search: input.Search}.filter())
	if err != nil {
		return nil, fmt.Errorf("list notes for export: %w", err)
	}

	now := s.now()
	notes := selectIDs(DerivedView(listed, input.Options, now), input.IDs)

	if limit := s.cfg.ExportMaxNotes; limit > 0 && len(notes) > limit {
		return nil, domain.NewValidationError("notes", fmt.Sprintf("too many to export (max %d)", limit))
	}

	format := input.Format
	if format == "" {
		format = domain.ExportJSON
	}

	result := &ExportResult{
		Filename: fmt.Sprintf("notes-%s.%s", now.UTC().Format(time.DateOnly), format.Extension()),
		Count:    len(notes),
	}

	switch format {
	case domain.ExportText:
		result.ContentType = "text/plain; charset=utf-8"
		result.Body = []byte(FormatText(notes))
	default:
		body, err := FormatJSON(notes)
		if err != nil {
			return nil, fmt.Errorf("encode export: %w", err)
		}
		result.ContentType = "application/json"
		result.Body = body
	}

	s.log.InfoContext(ctx, "notes exported",
		slog.String("user_id", userID.String()),
		slog.String("format", string(format)),
		slog.Int("count", len(notes)),
	)

	return result, nil
}

// FormatJSON renders notes as a two-space indented JSON array.
func FormatJSON(notes []domain.Note) ([]byte, error) {
	items := make([]ExportedNote, 0, len(notes))
	for _, n := range notes {
		items = append(items, ExportedNote{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			Pinned:    n.Pinned,
			Color:     n.Color.String(),
			Archived:  n.Archived,
			Trashed:   n.Trashed,
			DeletedAt: n.DeletedAt,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
	}
	return json.MarshalIndent(items, "", "  ")
}

// FormatText renders each note as a markdown heading followed by its
// content and a horizontal rule.
func FormatText(notes []domain.Note) string {
	var b strings.Builder
	for _, n := range notes {
		fmt.Fprintf(&b, "# %s\n\n%s\n\n---\n\n", n.Title, n.Content)
	}
	return b.String()
}

// selectIDs keeps only notes whose id is in ids, preserving the order of
// notes. An empty ids keeps everything.
func selectIDs(notes []domain.Note, ids []uuid.UUID) []domain.Note {
	if len(ids) == 0 {
		return notes
	}
	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]domain.Note, 0, len(ids))
	for _, n := range notes {
		if _, ok := want[n.ID]; ok {
			out = append(out, n)
		}
	}
	return out
}
