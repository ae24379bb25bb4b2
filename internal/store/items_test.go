package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/ecoswap/ecoswap/internal/db"
	"github.com/ecoswap/ecoswap/internal/model"
)

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "alice", "hash")

	item, err := CreateItem(ctx, database, user.ID, "Winter Jacket", "Barely worn", nil,
		model.ConditionGood, model.ExchangeSwap, "Portland")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Title != "Winter Jacket" {
		t.Errorf("expected title 'Winter Jacket', got %q", item.Title)
	}
	if !item.IsActive {
		t.Error("expected new item to be active")
	}
	if item.OwnerUsername != "alice" {
		t.Errorf("expected joined owner 'alice', got %q", item.OwnerUsername)
	}
}

func TestCreateItemValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "alice", "hash")

	tests := []struct {
		name                                       string
		title, condition, exchangeType, location string
	}{
		{"missing title", "", model.ConditionGood, model.ExchangeSwap, "Portland"},
		{"missing location", "Jacket", model.ConditionGood, model.ExchangeSwap, ""},
		{"bad condition", "Jacket", "mint", model.ExchangeSwap, "Portland"},
		{"bad exchange type", "Jacket", model.ConditionGood, "sell", "Portland"},
	}

	for _, tt := range tests {
		if _, err := CreateItem(ctx, database, user.ID, tt.title, "", nil,
			tt.condition, tt.exchangeType, tt.location); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}

	// Nothing persisted.
	items, _ := ListItemsByOwner(ctx, database, user.ID)
	if len(items) != 0 {
		t.Errorf("expected 0 items after rejected creates, got %d", len(items))
	}
}

func TestGetActiveItemHidesInactive(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "alice", "hash")
	item, _ := CreateItem(ctx, database, user.ID, "Lamp", "", nil,
		model.ConditionFair, model.ExchangeDonate, "Denver")

	got, err := GetActiveItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetActiveItem: %v", err)
	}
	if got == nil {
		t.Fatal("expected active item to be visible")
	}

	SetItemActive(ctx, database, item.ID, false)

	got, err = GetActiveItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetActiveItem (inactive): %v", err)
	}
	if got != nil {
		t.Error("expected nil for inactive item")
	}

	// Missing ID behaves the same way.
	got, _ = GetActiveItem(ctx, database, 9999)
	if got != nil {
		t.Error("expected nil for missing item")
	}

	// The owner's view still includes it.
	owned, _ := ListItemsByOwner(ctx, database, user.ID)
	if len(owned) != 1 {
		t.Errorf("expected 1 owned item, got %d", len(owned))
	}
}

func TestListActiveItemsOrderAndLimit(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "alice", "hash")
	for i := 0; i < 6; i++ {
		CreateItem(ctx, database, user.ID, fmt.Sprintf("Item %d", i), "", nil,
			model.ConditionGood, model.ExchangeSwap, "Austin")
	}

	items, err := ListActiveItems(ctx, database, 5)
	if err != nil {
		t.Fatalf("ListActiveItems: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	// Newest first.
	if items[0].Title != "Item 5" {
		t.Errorf("expected newest item first, got %q", items[0].Title)
	}
}

func TestItemImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "alice", "hash")
	item, _ := CreateItem(ctx, database, user.ID, "Bike", "", nil,
		model.ConditionGood, model.ExchangeReuse, "Austin")

	imageData := []byte("fake image data")
	SetItemImage(ctx, database, item.ID, imageData, "image/jpeg")

	data, mime, err := GetItemImage(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItemImage: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("expected image data, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}
}
