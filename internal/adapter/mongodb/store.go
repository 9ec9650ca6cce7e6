// Package mongodb implements the note and user stores on MongoDB.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/heartmarshall/notekeeper-backend/internal/config"
)

const (
	notesCollection = "notes"
	usersCollection = "users"
)

// Store owns the MongoDB client and hands out repositories bound to it.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to MongoDB, pings the primary for fail-fast validation,
// and returns a ready Store.
func Open(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Notes returns the note repository.
func (s *Store) Notes() *NoteRepo {
	return NewNoteRepo(s.db.Collection(notesCollection))
}

// Users returns the user repository.
func (s *Store) Users() *UserRepo {
	return NewUserRepo(s.db.Collection(usersCollection))
}

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	_, err = s.db.Collection(notesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "trashed", Value: 1},
				{Key: "archived", Value: 1},
				{Key: "pinned", Value: -1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("notes_owner_view_order"),
		},
		{
			Keys:    bson.D{{Key: "deleted_at", Value: 1}},
			Options: options.Index().SetName("notes_trash_purge").SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create notes indexes: %w", err)
	}

	return nil
}
