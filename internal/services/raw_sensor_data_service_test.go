package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/pointers"
	"github.com/safedrive/telematics-api/internal/repos"
	"github.com/safedrive/telematics-api/internal/repos/testutil"
	"github.com/safedrive/telematics-api/internal/types"
)

func TestMarshalFloatsRejectsNonFiniteValues(t *testing.T) {
	for _, bad := range [][]float64{
		{1, math.NaN()},
		{math.Inf(1)},
	} {
		if _, err := marshalFloats(bad); !apierr.IsKind(err, apierr.KindValidation) {
			t.Fatalf("marshalFloats(%v): err = %v, want validation error", bad, err)
		}
	}

	out, err := marshalFloats(nil)
	if err != nil {
		t.Fatalf("marshalFloats(nil): %v", err)
	}
	if string(out) != "[]" {
		t.Fatalf("marshalFloats(nil) = %s, want []", out)
	}
}

func rawSensorDataServiceHarness(t *testing.T) RawSensorDataService {
	t.Helper()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	return NewRawSensorDataService(tx, log,
		repos.NewRawSensorDataRepo(tx, log),
		repos.NewLocationRepo(tx, log),
		repos.NewTripRepo(tx, log),
	)
}

func TestRawSensorDataServiceUpdateRejectsNonFiniteValues(t *testing.T) {
	svc := rawSensorDataServiceHarness(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &types.RawSensorDataCreate{
		SensorTypeName: "accelerometer",
		Values:         []float64{0.1, 0.2},
		Timestamp:      pointers.Int64(time.Now().UnixMilli()),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(ctx, created.ID, &types.RawSensorDataUpdate{
		Values: &[]float64{math.NaN()},
	})
	if !apierr.IsKind(err, apierr.KindValidation) {
		t.Fatalf("update with NaN values: err = %v, want validation error", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got.Values) != string(created.Values) {
		t.Fatalf("failed update changed values: %s -> %s", created.Values, got.Values)
	}
}
