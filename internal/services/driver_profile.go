package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/repos"
	"github.com/safedrive/telematics-api/internal/types"
)

type DriverProfileService interface {
	CrudService[types.DriverProfile, types.DriverProfileCreate, types.DriverProfileUpdate]
}

func NewDriverProfileService(db *gorm.DB, log *logger.Logger, profiles repos.DriverProfileRepo) DriverProfileService {
	serviceLog := log.With("service", "DriverProfileService")

	hooks := Hooks[types.DriverProfile, types.DriverProfileCreate, types.DriverProfileUpdate]{
		Entity: "driver profile",
		ValidateCreate: func(in *types.DriverProfileCreate) error {
			if strings.TrimSpace(in.Email) == "" {
				return apierr.Validation("email is required", nil)
			}
			return nil
		},
		NewRecord: func(in *types.DriverProfileCreate) (*types.DriverProfile, error) {
			rec := &types.DriverProfile{
				ID:    uuid.New(),
				Email: strings.TrimSpace(in.Email),
			}
			if in.Sync != nil {
				rec.Sync = *in.Sync
			}
			return rec, nil
		},
		// The unique index is the backstop; checking first gives the caller
		// a conflict message instead of a raw constraint violation.
		CheckRefs: func(ctx context.Context, tx *gorm.DB, in *types.DriverProfileCreate) error {
			existing, err := profiles.GetByEmail(ctx, tx, strings.TrimSpace(in.Email))
			if err != nil {
				return translateDBError(err)
			}
			if existing != nil {
				return apierr.Conflict("a driver profile with this email already exists", nil)
			}
			return nil
		},
		UpdateFields: func(in *types.DriverProfileUpdate) (map[string]any, error) {
			fields := map[string]any{}
			if in.Email != nil {
				fields["email"] = strings.TrimSpace(*in.Email)
			}
			if in.Sync != nil {
				fields["sync"] = *in.Sync
			}
			return fields, nil
		},
	}
	return newCrudService(db, serviceLog, profiles, hooks)
}
