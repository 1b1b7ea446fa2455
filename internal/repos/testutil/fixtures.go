package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/types"
)

func SeedDriverProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.DriverProfile {
	tb.Helper()
	p := &types.DriverProfile{
		ID:    uuid.New(),
		Email: email,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed driver profile: %v", err)
	}
	return p
}

func SeedTrip(tb testing.TB, ctx context.Context, tx *gorm.DB, profileID uuid.UUID) *types.Trip {
	tb.Helper()
	t := &types.Trip{
		ID:              uuid.New(),
		DriverProfileID: profileID,
		StartTime:       time.Now().UnixMilli(),
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed trip: %v", err)
	}
	return t
}

func SeedLocation(tb testing.TB, ctx context.Context, tx *gorm.DB) *types.Location {
	tb.Helper()
	l := &types.Location{
		ID:        uuid.New(),
		Latitude:  6.5244,
		Longitude: 3.3792,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed location: %v", err)
	}
	return l
}

func SeedUnsafeBehaviour(tb testing.TB, ctx context.Context, tx *gorm.DB, tripID, profileID uuid.UUID) *types.UnsafeBehaviour {
	tb.Helper()
	b := &types.UnsafeBehaviour{
		ID:              uuid.New(),
		TripID:          tripID,
		DriverProfileID: profileID,
		BehaviourType:   "harsh_braking",
		Severity:        0.7,
		Timestamp:       time.Now().UnixMilli(),
	}
	if err := tx.WithContext(ctx).Create(b).Error; err != nil {
		tb.Fatalf("seed unsafe behaviour: %v", err)
	}
	return b
}
