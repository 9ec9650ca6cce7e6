// Package note implements the Note store using PostgreSQL.
package note

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

const table = "notes"

var columns = []string{
	"id", "user_id", "title", "content", "pinned", "color",
	"archived", "trashed", "deleted_at", "created_at", "updated_at",
}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type noteRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	Title     string     `db:"title"`
	Content   string     `db:"content"`
	Pinned    bool       `db:"pinned"`
	Color     string     `db:"color"`
	Archived  bool       `db:"archived"`
	Trashed   bool       `db:"trashed"`
	DeletedAt *time.Time `db:"deleted_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (r noteRow) toDomain() domain.Note {
	return domain.Note{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		Pinned:    r.Pinned,
		Color:     domain.Color(r.Color),
		Archived:  r.Archived,
		Trashed:   r.Trashed,
		DeletedAt: r.DeletedAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the owner's notes in the requested view, pinned first, then
// newest first. Search matches title or content case-insensitively.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.Note, error) {
	qb := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(viewPredicate(filter.View))

	if filter.Search != "" {
		pattern := postgres.ContainsPattern(filter.Search)
		qb = qb.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"content": pattern},
		})
	}

	query, args, err := qb.OrderBy("pinned DESC", "created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []noteRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "notes of user", userID)
	}

	notes := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, row.toDomain())
	}
	return notes, nil
}

// GetByID returns a single note owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "note", noteID)
	}

	n := row.toDomain()
	return &n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a note and returns the persisted row.
func (r *Repo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			n.ID, n.UserID, n.Title, n.Content, n.Pinned, n.Color.String(),
			n.Archived, n.Trashed, n.DeletedAt, n.CreatedAt, n.UpdatedAt,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "note", n.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// Update applies patch to the note in a single statement and returns the
// updated row. An empty patch returns the current row unchanged.
func (r *Repo) Update(ctx context.Context, userID, noteID uuid.UUID, patch domain.NotePatch) (*domain.Note, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, userID, noteID)
	}

	ub := postgres.Builder().
		Update(table).
		Set("updated_at", sq.Expr("now()"))

	if patch.Title != nil {
		ub = ub.Set("title", *patch.Title)
	}
	if patch.Content != nil {
		ub = ub.Set("content", *patch.Content)
	}
	if patch.Pinned != nil {
		ub = ub.Set("pinned", *patch.Pinned)
	}
	if patch.Color != nil {
		ub = ub.Set("color", patch.Color.String())
	}
	if patch.Archived != nil {
		ub = ub.Set("archived", *patch.Archived)
	}
	if patch.Trashed != nil {
		ub = ub.Set("trashed", *patch.Trashed).Set("deleted_at", patch.DeletedAt)
	}

	query, args, err := ub.
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "note", noteID)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes the note permanently. Returns ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "note", noteID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}
	return nil
}

// PurgeTrashed permanently removes every trashed note moved to trash before
// the given time, across all owners. Returns the number of removed notes.
func (r *Repo) PurgeTrashed(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"trashed": true}).
		Where(sq.Lt{"deleted_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "trashed notes before", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func viewPredicate(v domain.View) sq.Sqlizer {
	switch v {
	case domain.ViewArchived:
		return sq.Eq{"archived": true, "trashed": false}
	case domain.ViewTrash:
		return sq.Eq{"trashed": true}
	default:
		return sq.Eq{"archived": false, "trashed": false}
	}
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}
