package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// UserRepo provides user persistence backed by a MongoDB collection.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepo creates a user repository over coll.
func NewUserRepo(coll *mongo.Collection) *UserRepo {
	return &UserRepo{coll: coll}
}

type userDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d userDoc) toDomain() (*domain.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("decode user id %q: %w", d.ID, err)
	}
	return &domain.User{
		ID:           id,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

// GetByID returns a user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, bson.M{"_id": id.String()}, id)
}

// GetByEmail returns a user by email address. The email is normalized first.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, bson.M{"email": domain.NormalizeEmail(email)}, uuid.Nil)
}

// Create inserts a new user. A taken email yields domain.ErrAlreadyExists
// through the unique email index.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	d := userDoc{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        domain.NormalizeEmail(u.Email),
		PasswordHash: u.PasswordHash,
		CreatedAt:    storedTime(u.CreatedAt),
		UpdatedAt:    storedTime(u.UpdatedAt),
	}
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return nil, mapError(err, "user", u.ID)
	}
	return d.toDomain()
}

func (r *UserRepo) getOne(ctx context.Context, filter bson.M, id uuid.UUID) (*domain.User, error) {
	var d userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, mapError(err, "user", id)
	}
	return d.toDomain()
}
