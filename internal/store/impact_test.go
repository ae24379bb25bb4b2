package store

import (
	"context"
	"testing"

	"github.com/ecoswap/ecoswap/internal/db"
)

func TestSumImpactEmptyIsZero(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "alice", "hash")

	summary, err := SumImpact(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("SumImpact: %v", err)
	}
	if summary.TotalItemsKept != 0 {
		t.Errorf("expected 0 items kept, got %d", summary.TotalItemsKept)
	}
	if summary.TotalCO2Saved != 0.0 {
		t.Errorf("expected 0.0 CO2 saved, got %v", summary.TotalCO2Saved)
	}
}

func TestSumImpactAggregates(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice, _ := CreateUser(ctx, database, "alice", "hash")
	bob, _ := CreateUser(ctx, database, "bob", "hash")

	CreateImpactLog(ctx, database, alice.ID, 2, 5.5)
	CreateImpactLog(ctx, database, alice.ID, 1, 2.0)
	CreateImpactLog(ctx, database, bob.ID, 10, 100.0)

	summary, err := SumImpact(ctx, database, alice.ID)
	if err != nil {
		t.Fatalf("SumImpact: %v", err)
	}
	if summary.TotalItemsKept != 3 {
		t.Errorf("expected 3 items kept, got %d", summary.TotalItemsKept)
	}
	if summary.TotalCO2Saved != 7.5 {
		t.Errorf("expected 7.5 kg CO2, got %v", summary.TotalCO2Saved)
	}
}
