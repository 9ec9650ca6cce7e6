package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

// mapError converts driver errors to domain errors.
// Context errors pass through unchanged.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
	}

	return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrStoreUnavailable, err)
}
