package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ecoswap/ecoswap/internal/db"
	"github.com/ecoswap/ecoswap/internal/model"
)

func setupSwap(t *testing.T) (*sql.DB, *model.User, *model.User, *model.Item) {
	t.Helper()
	database := db.NewTestDB(t)
	ctx := context.Background()

	owner, _ := CreateUser(ctx, database, "alice", "hash")
	requester, _ := CreateUser(ctx, database, "bob", "hash")
	item, err := CreateItem(ctx, database, owner.ID, "Toaster", "Works fine", nil,
		model.ConditionGood, model.ExchangeSwap, "Austin")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	return database, owner, requester, item
}

func TestCreateSwapRequest(t *testing.T) {
	database, _, requester, item := setupSwap(t)
	ctx := context.Background()

	req, err := CreateSwapRequest(ctx, database, item.ID, requester.ID, "I have a kettle to trade")
	if err != nil {
		t.Fatalf("CreateSwapRequest: %v", err)
	}
	if req.Status != model.SwapStatusPending {
		t.Errorf("expected status 'pending', got %q", req.Status)
	}
	if req.ItemTitle != "Toaster" || req.FromUsername != "bob" {
		t.Errorf("unexpected joined fields: %+v", req)
	}
}

func TestOwnerCannotRequestOwnItem(t *testing.T) {
	database, owner, _, item := setupSwap(t)
	ctx := context.Background()

	if _, err := CreateSwapRequest(ctx, database, item.ID, owner.ID, "mine!"); err == nil {
		t.Error("expected error when owner requests own item")
	}

	swaps, _ := ListSwapRequestsForOwner(ctx, database, owner.ID)
	if len(swaps) != 0 {
		t.Errorf("expected no swap requests, got %d", len(swaps))
	}
}

func TestCannotRequestInactiveItem(t *testing.T) {
	database, _, requester, item := setupSwap(t)
	ctx := context.Background()

	SetItemActive(ctx, database, item.ID, false)

	if _, err := CreateSwapRequest(ctx, database, item.ID, requester.ID, ""); err == nil {
		t.Error("expected error for inactive item")
	}
}

func TestSwapStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to string
		valid    bool
	}{
		{model.SwapStatusPending, model.SwapStatusAccepted, true},
		{model.SwapStatusPending, model.SwapStatusDeclined, true},
		{model.SwapStatusPending, model.SwapStatusCompleted, false},
		{model.SwapStatusAccepted, model.SwapStatusCompleted, true},
		{model.SwapStatusAccepted, model.SwapStatusDeclined, false},
		{model.SwapStatusDeclined, model.SwapStatusAccepted, false},
		{model.SwapStatusCompleted, model.SwapStatusPending, false},
		{model.SwapStatusPending, model.SwapStatusPending, false},
	}

	for _, tt := range tests {
		if got := model.ValidSwapTransition(tt.from, tt.to); got != tt.valid {
			t.Errorf("ValidSwapTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestDeclineSwapRequest(t *testing.T) {
	database, _, requester, item := setupSwap(t)
	ctx := context.Background()

	req, _ := CreateSwapRequest(ctx, database, item.ID, requester.ID, "")

	updated, err := UpdateSwapRequestStatus(ctx, database, req.ID, model.SwapStatusDeclined)
	if err != nil {
		t.Fatalf("UpdateSwapRequestStatus: %v", err)
	}
	if updated.Status != model.SwapStatusDeclined {
		t.Errorf("expected 'declined', got %q", updated.Status)
	}

	// Declined is terminal.
	if _, err := UpdateSwapRequestStatus(ctx, database, req.ID, model.SwapStatusAccepted); err == nil {
		t.Error("expected error for transition out of declined")
	}

	// The item stays listed.
	got, _ := GetActiveItem(ctx, database, item.ID)
	if got == nil {
		t.Error("expected item to remain active after decline")
	}
}

func TestCompleteSwapRecordsImpact(t *testing.T) {
	database, owner, requester, item := setupSwap(t)
	ctx := context.Background()

	req, _ := CreateSwapRequest(ctx, database, item.ID, requester.ID, "deal?")

	if _, err := UpdateSwapRequestStatus(ctx, database, req.ID, model.SwapStatusAccepted); err != nil {
		t.Fatalf("accept: %v", err)
	}
	updated, err := UpdateSwapRequestStatus(ctx, database, req.ID, model.SwapStatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if updated.Status != model.SwapStatusCompleted {
		t.Errorf("expected 'completed', got %q", updated.Status)
	}

	// Completion deactivates the item.
	got, _ := GetActiveItem(ctx, database, item.ID)
	if got != nil {
		t.Error("expected item to be inactive after completed swap")
	}

	// Exactly one impact log for the owner, credited per exchange type.
	logs, err := ListImpactLogs(ctx, database, owner.ID)
	if err != nil {
		t.Fatalf("ListImpactLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 impact log, got %d", len(logs))
	}
	if logs[0].ItemsKeptInCirculation != 1 {
		t.Errorf("expected 1 item kept in circulation, got %d", logs[0].ItemsKeptInCirculation)
	}
	if logs[0].CO2SavedKg != model.EstimateCO2SavedKg(model.ExchangeSwap) {
		t.Errorf("unexpected CO2 estimate: %v", logs[0].CO2SavedKg)
	}

	// The owner's shared-item counter moved, even without a profile page visit.
	profile, _ := GetOrCreateProfile(ctx, database, owner.ID)
	if profile.TotalItemsShared != 1 {
		t.Errorf("expected 1 item shared, got %d", profile.TotalItemsShared)
	}

	// The requester's impact is untouched.
	summary, _ := SumImpact(ctx, database, requester.ID)
	if summary.TotalItemsKept != 0 {
		t.Errorf("expected requester impact 0, got %d", summary.TotalItemsKept)
	}
}

func TestListSwapRequestsForOwnerAndUser(t *testing.T) {
	database, owner, requester, item := setupSwap(t)
	ctx := context.Background()

	CreateSwapRequest(ctx, database, item.ID, requester.ID, "first")

	incoming, err := ListSwapRequestsForOwner(ctx, database, owner.ID)
	if err != nil {
		t.Fatalf("ListSwapRequestsForOwner: %v", err)
	}
	if len(incoming) != 1 || incoming[0].ItemOwnerID != owner.ID {
		t.Errorf("unexpected incoming requests: %+v", incoming)
	}

	outgoing, err := ListSwapRequestsByUser(ctx, database, requester.ID)
	if err != nil {
		t.Fatalf("ListSwapRequestsByUser: %v", err)
	}
	if len(outgoing) != 1 || outgoing[0].FromUserID != requester.ID {
		t.Errorf("unexpected outgoing requests: %+v", outgoing)
	}

	// The owner has made no requests of their own.
	none, _ := ListSwapRequestsByUser(ctx, database, owner.ID)
	if len(none) != 0 {
		t.Errorf("expected 0 outgoing requests for owner, got %d", len(none))
	}
}
