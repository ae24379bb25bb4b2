package store

import (
	"context"
	"testing"

	"github.com/ecoswap/ecoswap/internal/db"
	"github.com/ecoswap/ecoswap/internal/model"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Electronics", "electronics"},
		{"Kitchen & Dining", "kitchen-dining"},
		{"  Garden  ", "garden"},
		{"Reuse / Borrow", "reuse-borrow"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.name); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCreateCategory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	c, err := CreateCategory(ctx, database, "Board Games")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if c.Slug != "board-games" {
		t.Errorf("expected slug 'board-games', got %q", c.Slug)
	}

	// Name uniqueness is enforced.
	if _, err := CreateCategory(ctx, database, "Board Games"); err == nil {
		t.Error("expected error for duplicate category name")
	}
}

func TestSeedCategoriesIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := SeedCategories(ctx, database); err != nil {
		t.Fatalf("SeedCategories: %v", err)
	}
	if err := SeedCategories(ctx, database); err != nil {
		t.Fatalf("SeedCategories (second): %v", err)
	}

	categories, err := ListCategories(ctx, database)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != len(DefaultCategories) {
		t.Errorf("expected %d categories, got %d", len(DefaultCategories), len(categories))
	}
}

func TestDeleteCategoryNullsItemCategory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "alice", "hash")
	category, _ := CreateCategory(ctx, database, "Electronics")

	item, err := CreateItem(ctx, database, user.ID, "Radio", "", &category.ID,
		model.ConditionGood, model.ExchangeSwap, "Austin")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if err := DeleteCategory(ctx, database, category.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	// The item survives with its category cleared, not cascade-deleted.
	got, err := GetItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got == nil {
		t.Fatal("expected item to survive category deletion")
	}
	if got.CategoryID != nil {
		t.Errorf("expected nil category, got %v", *got.CategoryID)
	}
	if got.CategoryName != "" {
		t.Errorf("expected empty category name, got %q", got.CategoryName)
	}
}
