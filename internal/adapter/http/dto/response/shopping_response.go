package response

import (
	"time"

	"moveplanner/internal/domain/entities"
)

type ItemPriceResponse struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	EstUnitCents    int64     `json:"est_unit_cents"`
	ActualUnitCents *int64    `json:"actual_unit_cents,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromItemPrice(p entities.ItemPrice) ItemPriceResponse {
	return ItemPriceResponse{
		ID:              p.ID,
		ItemID:          p.ItemID,
		EstUnitCents:    p.EstUnitCents,
		ActualUnitCents: p.ActualUnitCents,
		CreatedAt:       p.CreatedAt,
	}
}

func FromItemPrices(prices []entities.ItemPrice) []ItemPriceResponse {
	out := make([]ItemPriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, FromItemPrice(p))
	}
	return out
}

// ItemResponse joins an item with its price history. EstUnitCents and
// ActualUnitCents mirror the latest price record so list views don't have
// to dig through the history.

type ItemResponse struct {
	ID              string              `json:"id"`
	WorkspaceID     string              `json:"workspace_id"`
	Name            string              `json:"name"`
	Link            string              `json:"link,omitempty"`
	ImageURL        string              `json:"image_url,omitempty"`
	CategoryID      string              `json:"category_id,omitempty"`
	RoomID          string              `json:"room_id,omitempty"`
	CompanyID       string              `json:"company_id,omitempty"`
	Quantity        int64               `json:"quantity"`
	Priority        int                 `json:"priority"`
	Purchased       bool                `json:"purchased"`
	Notes           string              `json:"notes,omitempty"`
	EstUnitCents    int64               `json:"est_unit_cents"`
	ActualUnitCents *int64              `json:"actual_unit_cents,omitempty"`
	Prices          []ItemPriceResponse `json:"prices,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

func FromItem(i entities.ItemWithPrices) ItemResponse {
	res := ItemResponse{
		ID:          i.ID,
		WorkspaceID: i.WorkspaceID,
		Name:        i.Name,
		Link:        i.Link,
		ImageURL:    i.ImageURL,
		CategoryID:  i.CategoryID,
		RoomID:      i.RoomID,
		CompanyID:   i.CompanyID,
		Quantity:    i.Quantity,
		Priority:    i.Priority,
		Purchased:   i.Purchased,
		Notes:       i.Notes,
		Prices:      FromItemPrices(i.Prices),
		CreatedAt:   i.CreatedAt,
	}
	if latest := i.LatestPrice(); latest != nil {
		res.EstUnitCents = latest.EstUnitCents
		res.ActualUnitCents = latest.ActualUnitCents
	}
	return res
}

func FromItems(items []entities.ItemWithPrices) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromItem(i))
	}
	return out
}

type CategoryResponse struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
}

func FromCategory(c entities.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, WorkspaceID: c.WorkspaceID, Name: c.Name, Color: c.Color}
}

func FromCategories(categories []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, FromCategory(c))
	}
	return out
}

type RoomResponse struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
}

func FromRoom(r entities.Room) RoomResponse {
	return RoomResponse{ID: r.ID, WorkspaceID: r.WorkspaceID, Name: r.Name}
}

func FromRooms(rooms []entities.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, FromRoom(r))
	}
	return out
}
