package note

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// ListInput
// ---------------------------------------------------------------------------

// ListInput selects a view and an optional search term.
type ListInput struct {
	View   domain.View
	Search string
}

// Validate checks the view and the search length.
func (i ListInput) Validate(maxSearch int) error {
	var errs []domain.FieldError

	if i.View != "" && !i.View.IsValid() {
		errs = append(errs, domain.FieldError{Field: "view", Message: "must be one of active, archived, trash"})
	}

	if maxSearch > 0 && len(i.Search) > maxSearch {
		errs = append(errs, domain.FieldError{Field: "search", Message: fmt.Sprintf("too long (max %d)", maxSearch)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListInput) filter() domain.ListFilter {
	view := i.View
	if view == "" {
		view = domain.ViewActive
	}
	return domain.ListFilter{View: view, Search: strings.TrimSpace(i.Search)}
}

// ---------------------------------------------------------------------------
// CreateInput
// ---------------------------------------------------------------------------

// CreateInput holds the fields of a new note. An empty Color means default.
type CreateInput struct {
	Title   string
	Content string
	Color   string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if _, err := domain.ParseColor(i.Color); err != nil {
		errs = append(errs, domain.FieldError{Field: "color", Message: "unknown color"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// UpdateInput
// ---------------------------------------------------------------------------

// UpdateInput is a partial update. Nil fields are left untouched; a present
// Color must name a palette entry.
type UpdateInput struct {
	NoteID   uuid.UUID
	Title    *string
	Content  *string
	Pinned   *bool
	Color    *string
	Archived *bool
	Trashed  *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be blank"})
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "must not be blank"})
	}
	if i.Color != nil {
		if strings.TrimSpace(*i.Color) == "" {
			errs = append(errs, domain.FieldError{Field: "color", Message: "must not be blank"})
		} else if _, err := domain.ParseColor(*i.Color); err != nil {
			errs = append(errs, domain.FieldError{Field: "color", Message: "unknown color"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// ExportInput
// ---------------------------------------------------------------------------

// ExportInput selects the notes to export. When IDs is non-empty only those
// notes are exported, in the order the derived view produces them.
type ExportInput struct {
	View    domain.View
	Search  string
	Options domain.ViewOptions
	IDs     []uuid.UUID
	Format  domain.ExportFormat
}

// Validate checks the listing parameters and the format.
func (i ExportInput) Validate(maxSearch int) error {
	if err := (ListInput{View: i.View, Search: i.Search}).Validate(maxSearch); err != nil {
		return err
	}
	switch i.Format {
	case "", domain.ExportJSON, domain.ExportText:
		return nil
	}
	return domain.NewValidationError("format", "must be json or txt")
}
