package response

import (
	"testing"
	"time"

	"moveplanner/internal/domain/entities"
)

func TestFromItem(t *testing.T) {
	now := time.Now().UTC()
	actual := int64(1899)

	it := entities.ItemWithPrices{
		Item: entities.Item{
			ID:          "item-1",
			WorkspaceID: "ws-1",
			Name:        "Couch",
			RoomID:      "room-1",
			Quantity:    2,
			Priority:    1,
			Purchased:   true,
			CreatedAt:   now,
		},
		Prices: []entities.ItemPrice{
			{ID: "p-1", ItemID: "item-1", EstUnitCents: 2000, CreatedAt: now.Add(-time.Hour)},
			{ID: "p-2", ItemID: "item-1", EstUnitCents: 1900, ActualUnitCents: &actual, CreatedAt: now},
		},
	}

	res := FromItem(it)
	if res.ID != "item-1" || res.Name != "Couch" {
		t.Fatalf("unexpected item: %+v", res)
	}
	if res.EstUnitCents != 1900 {
		t.Fatalf("expected latest estimate 1900, got %d", res.EstUnitCents)
	}
	if res.ActualUnitCents == nil || *res.ActualUnitCents != 1899 {
		t.Fatalf("expected latest actual 1899, got %v", res.ActualUnitCents)
	}
	if len(res.Prices) != 2 {
		t.Fatalf("expected 2 price records, got %d", len(res.Prices))
	}
}

func TestFromItem_NoPriceHistory(t *testing.T) {
	res := FromItem(entities.ItemWithPrices{Item: entities.Item{ID: "item-1", Name: "Lamp"}})
	if res.EstUnitCents != 0 {
		t.Fatalf("expected zero estimate, got %d", res.EstUnitCents)
	}
	if res.ActualUnitCents != nil {
		t.Fatalf("expected nil actual, got %v", res.ActualUnitCents)
	}
	if len(res.Prices) != 0 {
		t.Fatalf("expected no price records, got %d", len(res.Prices))
	}
}

func TestFromCategory(t *testing.T) {
	res := FromCategory(entities.Category{ID: "cat-1", WorkspaceID: "ws-1", Name: "Decor", Color: "#f97316"})
	if res.ID != "cat-1" || res.Name != "Decor" || res.Color != "#f97316" {
		t.Fatalf("unexpected category: %+v", res)
	}
}
