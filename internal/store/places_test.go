package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ecoswap/ecoswap/internal/db"
	"github.com/ecoswap/ecoswap/internal/model"
)

func seedPlaces(t *testing.T) *sql.DB {
	t.Helper()
	database := db.NewTestDB(t)
	ctx := context.Background()

	places := []*model.EcoPlace{
		{Name: "Fix-It Collective", PlaceType: model.PlaceRepair, Address: "12 S Lamar Blvd", City: "Austin"},
		{Name: "East Side Recycling", PlaceType: model.PlaceRecycling, Address: "400 E 6th St", City: "Austin"},
		{Name: "Second Chance Hub", PlaceType: model.PlaceDonation, Address: "9 Pine St", City: "Portland"},
		{Name: "Repair Cafe", PlaceType: model.PlaceRepair, Address: "77 Oak Ave", City: "Salem"},
	}
	for _, p := range places {
		if _, err := CreateEcoPlace(ctx, database, p); err != nil {
			t.Fatalf("CreateEcoPlace(%s): %v", p.Name, err)
		}
	}
	return database
}

func TestFindEcoPlacesNoFilters(t *testing.T) {
	database := seedPlaces(t)

	places, err := FindEcoPlaces(context.Background(), database, "", "")
	if err != nil {
		t.Fatalf("FindEcoPlaces: %v", err)
	}
	if len(places) != 4 {
		t.Fatalf("expected 4 places, got %d", len(places))
	}
	// Ordered by city, then name.
	if places[0].City != "Austin" || places[0].Name != "East Side Recycling" {
		t.Errorf("unexpected first place: %+v", places[0])
	}
}

func TestFindEcoPlacesCityCaseInsensitive(t *testing.T) {
	database := seedPlaces(t)

	for _, city := range []string{"Austin", "austin", "AUSTIN", "usti"} {
		places, err := FindEcoPlaces(context.Background(), database, city, "")
		if err != nil {
			t.Fatalf("FindEcoPlaces(%q): %v", city, err)
		}
		if len(places) != 2 {
			t.Errorf("city %q: expected 2 places, got %d", city, len(places))
		}
		for _, p := range places {
			if p.City != "Austin" {
				t.Errorf("city %q: unexpected match %+v", city, p)
			}
		}
	}
}

func TestFindEcoPlacesTypeExact(t *testing.T) {
	database := seedPlaces(t)

	places, err := FindEcoPlaces(context.Background(), database, "", model.PlaceRepair)
	if err != nil {
		t.Fatalf("FindEcoPlaces: %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("expected 2 repair places, got %d", len(places))
	}
	for _, p := range places {
		if p.PlaceType != model.PlaceRepair {
			t.Errorf("unexpected place type: %+v", p)
		}
	}

	// The type filter never substring-matches.
	places, _ = FindEcoPlaces(context.Background(), database, "", "repai")
	if len(places) != 0 {
		t.Errorf("expected 0 places for partial type, got %d", len(places))
	}
}

func TestFindEcoPlacesCombinedFilters(t *testing.T) {
	database := seedPlaces(t)

	places, err := FindEcoPlaces(context.Background(), database, "austin", model.PlaceRepair)
	if err != nil {
		t.Fatalf("FindEcoPlaces: %v", err)
	}
	if len(places) != 1 || places[0].Name != "Fix-It Collective" {
		t.Errorf("expected Fix-It Collective, got %+v", places)
	}
}

func TestCreateEcoPlaceValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateEcoPlace(ctx, database, &model.EcoPlace{
		Name: "Somewhere", PlaceType: "junkyard", Address: "1 Road",
	}); err == nil {
		t.Error("expected error for unknown place type")
	}
	if _, err := CreateEcoPlace(ctx, database, &model.EcoPlace{
		PlaceType: model.PlaceOther, Address: "1 Road",
	}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestEcoPlaceCoordinatesOptional(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	lat, lng := 30.2672, -97.7431
	withCoords, err := CreateEcoPlace(ctx, database, &model.EcoPlace{
		Name: "Mapped", PlaceType: model.PlaceOther, Address: "1 Road",
		Latitude: &lat, Longitude: &lng,
	})
	if err != nil {
		t.Fatalf("CreateEcoPlace: %v", err)
	}
	if withCoords.Latitude == nil || *withCoords.Latitude != lat {
		t.Errorf("expected latitude %v, got %v", lat, withCoords.Latitude)
	}

	without, err := CreateEcoPlace(ctx, database, &model.EcoPlace{
		Name: "Unmapped", PlaceType: model.PlaceOther, Address: "2 Road",
	})
	if err != nil {
		t.Fatalf("CreateEcoPlace: %v", err)
	}
	if without.Latitude != nil || without.Longitude != nil {
		t.Errorf("expected nil coordinates, got %+v", without)
	}
}
