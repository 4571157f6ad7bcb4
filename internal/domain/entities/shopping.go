package entities

import "time"

// Category is a named, colored tag used to group items and tasks.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (workspace_id-index): workspace_id

type Category struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
}

// Room is a named location tag; budgets and savings are tracked per room.

type Room struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
}

// Item is a shopping-list entry. Priority runs 1 (high) to 3 (low).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (workspace_id-index): workspace_id

type Item struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Link        string    `json:"link,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CategoryID  string    `json:"category_id,omitempty"`
	RoomID      string    `json:"room_id,omitempty"`
	CompanyID   string    `json:"company_id,omitempty"`
	Quantity    int64     `json:"quantity"`
	Priority    int       `json:"priority"`
	Purchased   bool      `json:"purchased"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemPrice is one record of an item's price history. The current price of
// an item is its most recently created record, not the max of any field.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (item_id-index): item_id

type ItemPrice struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	EstUnitCents    int64     `json:"est_unit_cents"`
	ActualUnitCents *int64    `json:"actual_unit_cents,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ItemWithPrices bundles an item with its ordered price history for reads.

type ItemWithPrices struct {
	Item
	Prices []ItemPrice `json:"prices,omitempty"`
}

// LatestPrice returns the most recently created price record, or nil when
// the item has no price history yet.
func (i ItemWithPrices) LatestPrice() *ItemPrice {
	if len(i.Prices) == 0 {
		return nil
	}
	latest := i.Prices[0]
	for _, p := range i.Prices[1:] {
		// Ties keep the later record: insertion order wins.
		if !p.CreatedAt.Before(latest.CreatedAt) {
			latest = p
		}
	}
	return &latest
}
