package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/safedrive/telematics-api/internal/repos/testutil"
	"github.com/safedrive/telematics-api/internal/types"
)

func TestTripRepoListOrderAndPaging(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewTripRepo(db, testutil.Logger(t))
	ctx := context.Background()

	profile := testutil.SeedDriverProfile(t, ctx, tx, "triprepo@example.com")

	var seeded []*types.Trip
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		tr := &types.Trip{
			ID:              uuid.New(),
			DriverProfileID: profile.ID,
			StartTime:       base.Add(time.Duration(i) * time.Minute).UnixMilli(),
			CreatedAt:       base.Add(time.Duration(i) * time.Second),
		}
		if _, err := repo.Create(ctx, tx, []*types.Trip{tr}); err != nil {
			t.Fatalf("Create trip %d: %v", i, err)
		}
		seeded = append(seeded, tr)
	}

	page, err := repo.List(ctx, tx, 0, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("List: expected 3 rows, got %d", len(page))
	}
	for i, tr := range page {
		if tr.ID != seeded[i].ID {
			t.Fatalf("List: row %d out of order: got %s want %s", i, tr.ID, seeded[i].ID)
		}
	}

	rest, err := repo.List(ctx, tx, 3, 3)
	if err != nil {
		t.Fatalf("List (skip): %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("List (skip): expected 2 rows, got %d", len(rest))
	}
	if rest[0].ID != seeded[3].ID {
		t.Fatalf("List (skip): wrong first row: %s", rest[0].ID)
	}
}

func TestTripCascadeOnProfileDelete(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	profiles := NewDriverProfileRepo(db, testutil.Logger(t))
	trips := NewTripRepo(db, testutil.Logger(t))
	behaviours := NewUnsafeBehaviourRepo(db, testutil.Logger(t))
	ctx := context.Background()

	profile := testutil.SeedDriverProfile(t, ctx, tx, "cascade@example.com")
	trip := testutil.SeedTrip(t, ctx, tx, profile.ID)
	behaviour := testutil.SeedUnsafeBehaviour(t, ctx, tx, trip.ID, profile.ID)

	if _, err := profiles.DeleteByIDs(ctx, tx, []uuid.UUID{profile.ID}); err != nil {
		t.Fatalf("delete profile: %v", err)
	}

	gotTrip, err := trips.GetByID(ctx, tx, trip.ID)
	if err != nil {
		t.Fatalf("GetByID trip: %v", err)
	}
	if gotTrip != nil {
		t.Fatalf("trip survived profile delete: %+v", gotTrip)
	}

	gotBehaviour, err := behaviours.GetByID(ctx, tx, behaviour.ID)
	if err != nil {
		t.Fatalf("GetByID behaviour: %v", err)
	}
	if gotBehaviour != nil {
		t.Fatalf("behaviour survived profile delete: %+v", gotBehaviour)
	}
}

func TestUnsafeBehaviourListByTrip(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	behaviours := NewUnsafeBehaviourRepo(db, testutil.Logger(t))
	ctx := context.Background()

	profile := testutil.SeedDriverProfile(t, ctx, tx, "listbytrip@example.com")
	trip := testutil.SeedTrip(t, ctx, tx, profile.ID)
	other := testutil.SeedTrip(t, ctx, tx, profile.ID)

	testutil.SeedUnsafeBehaviour(t, ctx, tx, trip.ID, profile.ID)
	testutil.SeedUnsafeBehaviour(t, ctx, tx, trip.ID, profile.ID)
	testutil.SeedUnsafeBehaviour(t, ctx, tx, other.ID, profile.ID)

	got, err := behaviours.ListByTrip(ctx, tx, trip.ID)
	if err != nil {
		t.Fatalf("ListByTrip: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByTrip: expected 2 rows, got %d", len(got))
	}
	for _, b := range got {
		if b.TripID != trip.ID {
			t.Fatalf("ListByTrip: row from wrong trip: %+v", b)
		}
	}
}
