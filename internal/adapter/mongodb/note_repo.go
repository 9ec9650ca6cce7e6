package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// NoteRepo provides note persistence backed by a MongoDB collection.
type NoteRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewNoteRepo creates a note repository over coll.
func NewNoteRepo(coll *mongo.Collection) *NoteRepo {
	return &NoteRepo{coll: coll, now: time.Now}
}

type noteDoc struct {
	ID        string     `bson:"_id"`
	UserID    string     `bson:"user_id"`
	Title     string     `bson:"title"`
	Content   string     `bson:"content"`
	Pinned    bool       `bson:"pinned"`
	Color     string     `bson:"color"`
	Archived  bool       `bson:"archived"`
	Trashed   bool       `bson:"trashed"`
	DeletedAt *time.Time `bson:"deleted_at"`
	CreatedAt time.Time  `bson:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

func newNoteDoc(n *domain.Note) noteDoc {
	var deletedAt *time.Time
	if n.DeletedAt != nil {
		t := storedTime(*n.DeletedAt)
		deletedAt = &t
	}
	return noteDoc{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Title:     n.Title,
		Content:   n.Content,
		Pinned:    n.Pinned,
		Color:     n.Color.String(),
		Archived:  n.Archived,
		Trashed:   n.Trashed,
		DeletedAt: deletedAt,
		CreatedAt: storedTime(n.CreatedAt),
		UpdatedAt: storedTime(n.UpdatedAt),
	}
}

func (d noteDoc) toDomain() (domain.Note, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Note{}, fmt.Errorf("decode note id %q: %w", d.ID, err)
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return domain.Note{}, fmt.Errorf("decode note owner %q: %w", d.UserID, err)
	}
	return domain.Note{
		ID:        id,
		UserID:    userID,
		Title:     d.Title,
		Content:   d.Content,
		Pinned:    d.Pinned,
		Color:     domain.Color(d.Color),
		Archived:  d.Archived,
		Trashed:   d.Trashed,
		DeletedAt: d.DeletedAt,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the owner's notes in the requested view, pinned first, then
// newest first. Search matches title or content case-insensitively.
func (r *NoteRepo) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.Note, error) {
	opts := options.Find().SetSort(listSort())

	cur, err := r.coll.Find(ctx, listFilter(userID, filter), opts)
	if err != nil {
		return nil, mapError(err, "notes of user", userID)
	}

	var docs []noteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapError(err, "notes of user", userID)
	}

	notes := make([]domain.Note, 0, len(docs))
	for _, d := range docs {
		n, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// GetByID returns a single note owned by userID.
func (r *NoteRepo) GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	var d noteDoc
	if err := r.coll.FindOne(ctx, ownedBy(userID, noteID)).Decode(&d); err != nil {
		return nil, mapError(err, "note", noteID)
	}
	n, err := d.toDomain()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a note and returns it as stored.
func (r *NoteRepo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	d := newNoteDoc(n)
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return nil, mapError(err, "note", n.ID)
	}
	created, err := d.toDomain()
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies patch to the note atomically and returns the updated
// document. An empty patch returns the current document unchanged.
func (r *NoteRepo) Update(ctx context.Context, userID, noteID uuid.UUID, patch domain.NotePatch) (*domain.Note, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, userID, noteID)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": patchSet(patch, storedTime(r.now()))}

	var d noteDoc
	if err := r.coll.FindOneAndUpdate(ctx, ownedBy(userID, noteID), update, opts).Decode(&d); err != nil {
		return nil, mapError(err, "note", noteID)
	}
	n, err := d.toDomain()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Delete removes the note permanently. Returns ErrNotFound when nothing matched.
func (r *NoteRepo) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, ownedBy(userID, noteID))
	if err != nil {
		return mapError(err, "note", noteID)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}
	return nil
}

// PurgeTrashed permanently removes every trashed note moved to trash before
// the given time, across all owners.
func (r *NoteRepo) PurgeTrashed(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{
		"trashed":    true,
		"deleted_at": bson.M{"$lt": before.UTC()},
	})
	if err != nil {
		return 0, mapError(err, "trashed notes before", uuid.Nil)
	}
	return res.DeletedCount, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ownedBy(userID, noteID uuid.UUID) bson.M {
	return bson.M{"_id": noteID.String(), "user_id": userID.String()}
}

func listFilter(userID uuid.UUID, filter domain.ListFilter) bson.M {
	f := bson.M{"user_id": userID.String()}

	switch filter.View {
	case domain.ViewArchived:
		f["archived"] = true
		f["trashed"] = false
	case domain.ViewTrash:
		f["trashed"] = true
	default:
		f["archived"] = false
		f["trashed"] = false
	}

	if filter.Search != "" {
		rx := bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
		f["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"content": rx},
		}
	}
	return f
}

func listSort() bson.D {
	return bson.D{
		{Key: "pinned", Value: -1},
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	}
}

func patchSet(patch domain.NotePatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Pinned != nil {
		set["pinned"] = *patch.Pinned
	}
	if patch.Color != nil {
		set["color"] = patch.Color.String()
	}
	if patch.Archived != nil {
		set["archived"] = *patch.Archived
	}
	if patch.Trashed != nil {
		set["trashed"] = *patch.Trashed
		if patch.DeletedAt != nil {
			set["deleted_at"] = storedTime(*patch.DeletedAt)
		} else {
			set["deleted_at"] = nil
		}
	}
	return set
}

// storedTime matches the millisecond UTC precision BSON dates keep.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
