package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/repos"
)

// requireRef fails with not-found when the referenced row is absent, so a
// dangling foreign key surfaces as a client error instead of a constraint
// violation from the store.
func requireRef[T any](ctx context.Context, tx *gorm.DB, repo repos.Crud[T], id uuid.UUID, what string) error {
	rec, err := repo.GetByID(ctx, tx, id)
	if err != nil {
		return translateDBError(err)
	}
	if rec == nil {
		return apierr.NotFound(what+" does not exist", nil)
	}
	return nil
}
