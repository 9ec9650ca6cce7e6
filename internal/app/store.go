package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/notekeeper-backend/internal/adapter/mongodb"
	"github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres"
	noterepo "github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres/note"
	userrepo "github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/notekeeper-backend/internal/config"
	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// noteRepo and userRepo are implemented by both store adapters.
type noteRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.Note, error)
	GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, userID, noteID uuid.UUID, patch domain.NotePatch) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
	PurgeTrashed(ctx context.Context, before time.Time) (int64, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// Store is an opened persistence backend.
type Store struct {
	Driver string
	Notes  noteRepo
	Users  userRepo

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks the backend connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the backend connection.
func (s *Store) Close() {
	s.close()
}

// OpenStore connects to the backend selected by cfg.Store.Driver and
// prepares its schema: goose migrations for postgres when auto-migrate is
// on, indexes for mongo.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg.Mongo, logger)
	default:
		return openPostgres(ctx, cfg.Database, logger)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	logger.InfoContext(ctx, "connected to postgres",
		slog.Int("max_conns", int(cfg.MaxConns)),
		slog.Bool("auto_migrate", cfg.AutoMigrate),
	)

	return &Store{
		Driver: config.DriverPostgres,
		Notes:  noterepo.New(pool),
		Users:  userrepo.New(pool),
		ping:   pool.Ping,
		close:  pool.Close,
	}, nil
}

func openMongo(ctx context.Context, cfg config.MongoConfig, logger *slog.Logger) (*Store, error) {
	store, err := mongodb.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := store.EnsureIndexes(ctx); err != nil {
		_ = store.Close(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	logger.InfoContext(ctx, "connected to mongo", slog.String("database", cfg.Database))

	return &Store{
		Driver: config.DriverMongo,
		Notes:  store.Notes(),
		Users:  store.Users(),
		ping:   store.Ping,
		close: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Close(ctx); err != nil {
				logger.Warn("close mongo client", slog.String("error", err.Error()))
			}
		},
	}, nil
}
