package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/safedrive/telematics-api/internal/repos/testutil"
	"github.com/safedrive/telematics-api/internal/types"
)

func TestDriverProfileRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewDriverProfileRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*types.DriverProfile{
		{ID: uuid.New(), Email: "driverprofilerepo@example.com"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 profile, got %d", len(created))
	}

	got, err := repo.GetByID(ctx, tx, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.ID != created[0].ID {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	byEmail, err := repo.GetByEmail(ctx, tx, "driverprofilerepo@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail == nil || byEmail.ID != created[0].ID {
		t.Fatalf("GetByEmail: unexpected result: %+v", byEmail)
	}

	byEmail, err = repo.GetByEmail(ctx, tx, "missing@example.com")
	if err != nil {
		t.Fatalf("GetByEmail (missing): %v", err)
	}
	if byEmail != nil {
		t.Fatalf("GetByEmail (missing): expected nil, got %+v", byEmail)
	}

	if err := repo.Update(ctx, tx, created[0].ID, map[string]any{"sync": true}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.GetByID(ctx, tx, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if !got.Sync {
		t.Fatalf("Update: sync flag not persisted")
	}

	n, err := repo.DeleteByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("DeleteByIDs: %v", err)
	}
	if n != 1 {
		t.Fatalf("DeleteByIDs: expected 1 row, got %d", n)
	}
	got, err = repo.GetByID(ctx, tx, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID after delete: expected nil, got %+v", got)
	}
}

func TestDriverProfileRepoGetMissingID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewDriverProfileRepo(db, testutil.Logger(t))

	got, err := repo.GetByID(context.Background(), tx, uuid.New())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID: expected nil for unknown id, got %+v", got)
	}
}
