package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is a single user-owned text note.
//
// Trashed and DeletedAt always move together: a trashed note carries the
// time it was moved to trash, a non-trashed note carries nil.
type Note struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Content   string
	Pinned    bool
	Color     Color
	Archived  bool
	Trashed   bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// View reports which partition the note currently belongs to.
func (n Note) View() View {
	switch {
	case n.Trashed:
		return ViewTrash
	case n.Archived:
		return ViewArchived
	default:
		return ViewActive
	}
}

// NotePatch is a partial update of a note. Nil fields are left untouched.
//
// DeletedAt is only applied together with Trashed; a nil DeletedAt with a
// non-nil Trashed clears the timestamp.
type NotePatch struct {
	Title     *string
	Content   *string
	Pinned    *bool
	Color     *Color
	Archived  *bool
	Trashed   *bool
	DeletedAt *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Pinned == nil &&
		p.Color == nil && p.Archived == nil && p.Trashed == nil
}
