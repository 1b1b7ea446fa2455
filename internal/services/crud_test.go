package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/types"
)

// fakeTripRepo records the paging arguments List receives.
type fakeTripRepo struct {
	lastSkip  int
	lastLimit int
}

func (f *fakeTripRepo) Create(ctx context.Context, tx *gorm.DB, recs []*types.Trip) ([]*types.Trip, error) {
	return recs, nil
}

func (f *fakeTripRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Trip, error) {
	return nil, nil
}

func (f *fakeTripRepo) List(ctx context.Context, tx *gorm.DB, skip, limit int) ([]*types.Trip, error) {
	f.lastSkip = skip
	f.lastLimit = limit
	return []*types.Trip{}, nil
}

func (f *fakeTripRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
	return nil
}

func (f *fakeTripRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) (int64, error) {
	return int64(len(ids)), nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestListRejectsLimitOverCap(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := newCrudService(nil, testLogger(t), repo, Hooks[types.Trip, types.TripCreate, types.TripUpdate]{
		Entity: "trip",
	})

	_, err := svc.List(context.Background(), 0, MaxListLimit+1)
	if !apierr.IsKind(err, apierr.KindValidation) {
		t.Fatalf("List with oversize limit: err = %v, want validation error", err)
	}
	if e := apierr.As(err); e.Status() != 400 {
		t.Fatalf("List with oversize limit: status = %d, want 400", e.Status())
	}
}

func TestListNormalizesPagingDefaults(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := newCrudService(nil, testLogger(t), repo, Hooks[types.Trip, types.TripCreate, types.TripUpdate]{
		Entity: "trip",
	})
	ctx := context.Background()

	if _, err := svc.List(ctx, -5, 0); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastSkip != 0 || repo.lastLimit != DefaultListLimit {
		t.Fatalf("List(-5, 0) forwarded skip=%d limit=%d, want 0/%d", repo.lastSkip, repo.lastLimit, DefaultListLimit)
	}

	if _, err := svc.List(ctx, 7, MaxListLimit); err != nil {
		t.Fatalf("List at cap: %v", err)
	}
	if repo.lastSkip != 7 || repo.lastLimit != MaxListLimit {
		t.Fatalf("List(7, %d) forwarded skip=%d limit=%d", MaxListLimit, repo.lastSkip, repo.lastLimit)
	}
}
