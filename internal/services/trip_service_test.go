package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/pointers"
	"github.com/safedrive/telematics-api/internal/repos"
	"github.com/safedrive/telematics-api/internal/repos/testutil"
	"github.com/safedrive/telematics-api/internal/types"
)

// Services are built on a test transaction; their own transaction boundaries
// become savepoints inside it, so nothing leaks between tests.
func tripServiceHarness(t *testing.T) (TripService, repos.TripRepo, *types.DriverProfile) {
	t.Helper()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	tripRepo := repos.NewTripRepo(tx, log)
	profileRepo := repos.NewDriverProfileRepo(tx, log)
	svc := NewTripService(tx, log, tripRepo, profileRepo)

	profile := testutil.SeedDriverProfile(t, context.Background(), tx, "tripservice@example.com")
	return svc, tripRepo, profile
}

func TestTripServiceRoundTrip(t *testing.T) {
	svc, _, profile := tripServiceHarness(t)
	ctx := context.Background()

	start := time.Now().UnixMilli()
	created, err := svc.Create(ctx, &types.TripCreate{
		DriverProfileID: profile.ID,
		StartTime:       pointers.Int64(start),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("Create: id was not assigned")
	}
	if created.DriverProfileID != profile.ID || created.StartTime != start {
		t.Fatalf("Create: wrong row: %+v", created)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != created.ID || got.StartTime != start {
		t.Fatalf("Get: round trip mismatch: %+v", got)
	}
}

func TestTripServiceCreateRequiresFields(t *testing.T) {
	svc, _, profile := tripServiceHarness(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &types.TripCreate{StartTime: pointers.Int64(1)})
	if !apierr.IsKind(err, apierr.KindValidation) {
		t.Fatalf("missing driver_profile_id: err = %v, want validation error", err)
	}

	_, err = svc.Create(ctx, &types.TripCreate{DriverProfileID: profile.ID})
	if !apierr.IsKind(err, apierr.KindValidation) {
		t.Fatalf("missing start_time: err = %v, want validation error", err)
	}
}

func TestTripServiceCreateUnknownProfile(t *testing.T) {
	svc, _, _ := tripServiceHarness(t)

	_, err := svc.Create(context.Background(), &types.TripCreate{
		DriverProfileID: uuid.New(),
		StartTime:       pointers.Int64(1),
	})
	if !apierr.IsKind(err, apierr.KindNotFound) {
		t.Fatalf("unknown profile: err = %v, want not_found error", err)
	}
}

func TestTripServicePartialUpdate(t *testing.T) {
	svc, _, profile := tripServiceHarness(t)
	ctx := context.Background()

	start := time.Now().UnixMilli()
	created, err := svc.Create(ctx, &types.TripCreate{
		DriverProfileID: profile.ID,
		StartTime:       pointers.Int64(start),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	end := start + 600_000
	updated, err := svc.Update(ctx, created.ID, &types.TripUpdate{EndTime: pointers.Int64(end)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.EndTime == nil || *updated.EndTime != end {
		t.Fatalf("Update: end_time not applied: %+v", updated)
	}
	if updated.StartTime != start || updated.DriverProfileID != profile.ID {
		t.Fatalf("Update: untouched fields changed: %+v", updated)
	}
}

func TestTripServiceUpdateMissing(t *testing.T) {
	svc, _, _ := tripServiceHarness(t)

	_, err := svc.Update(context.Background(), uuid.New(), &types.TripUpdate{
		EndTime: pointers.Int64(1),
	})
	if !apierr.IsKind(err, apierr.KindNotFound) {
		t.Fatalf("update missing trip: err = %v, want not_found error", err)
	}
}

func TestTripServiceDeleteReturnsPriorState(t *testing.T) {
	svc, _, profile := tripServiceHarness(t)
	ctx := context.Background()

	start := time.Now().UnixMilli()
	created, err := svc.Create(ctx, &types.TripCreate{
		DriverProfileID: profile.ID,
		StartTime:       pointers.Int64(start),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	prior, err := svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if prior.ID != created.ID || prior.StartTime != start {
		t.Fatalf("Delete: prior state mismatch: %+v", prior)
	}

	_, err = svc.Get(ctx, created.ID)
	if !apierr.IsKind(err, apierr.KindNotFound) {
		t.Fatalf("Get after delete: err = %v, want not_found error", err)
	}
}

func TestTripServiceBatchCreateAtomic(t *testing.T) {
	svc, tripRepo, profile := tripServiceHarness(t)
	ctx := context.Background()

	n, err := svc.BatchCreate(ctx, []*types.TripCreate{
		{DriverProfileID: profile.ID, StartTime: pointers.Int64(1)},
		{DriverProfileID: uuid.New(), StartTime: pointers.Int64(2)},
	})
	if !apierr.IsKind(err, apierr.KindNotFound) {
		t.Fatalf("batch with unknown profile: err = %v, want not_found error", err)
	}
	if n != 0 {
		t.Fatalf("failed batch reported %d created", n)
	}

	rows, err := tripRepo.List(ctx, nil, 0, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("failed batch left %d rows behind", len(rows))
	}

	n, err = svc.BatchCreate(ctx, []*types.TripCreate{
		{DriverProfileID: profile.ID, StartTime: pointers.Int64(1)},
		{DriverProfileID: profile.ID, StartTime: pointers.Int64(2)},
	})
	if err != nil {
		t.Fatalf("BatchCreate: %v", err)
	}
	if n != 2 {
		t.Fatalf("BatchCreate: created %d, want 2", n)
	}
}

func TestTripServiceBatchDeleteIgnoresUnknown(t *testing.T) {
	svc, _, profile := tripServiceHarness(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &types.TripCreate{
		DriverProfileID: profile.ID,
		StartTime:       pointers.Int64(1),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	n, err := svc.BatchDelete(ctx, []uuid.UUID{created.ID, uuid.New()})
	if err != nil {
		t.Fatalf("BatchDelete: %v", err)
	}
	if n != 1 {
		t.Fatalf("BatchDelete: deleted %d, want 1", n)
	}
}
