package request

import (
	"moveplanner/internal/usecase"
)

// CreateItemRequest is the shopping-list entry payload. EstUnitCents seeds
// the item's first price record.

type CreateItemRequest struct {
	Name         string `json:"name" binding:"required"`
	Link         string `json:"link"`
	ImageURL     string `json:"image_url"`
	CategoryID   string `json:"category_id"`
	RoomID       string `json:"room_id"`
	CompanyID    string `json:"company_id"`
	Quantity     int64  `json:"quantity"`
	Priority     int    `json:"priority"`
	Notes        string `json:"notes"`
	EstUnitCents int64  `json:"est_unit_cents"`
}

func (r CreateItemRequest) ToInput() usecase.NewItemInput {
	return usecase.NewItemInput{
		Name:         r.Name,
		Link:         r.Link,
		ImageURL:     r.ImageURL,
		CategoryID:   r.CategoryID,
		RoomID:       r.RoomID,
		CompanyID:    r.CompanyID,
		Quantity:     r.Quantity,
		Priority:     r.Priority,
		Notes:        r.Notes,
		EstUnitCents: r.EstUnitCents,
	}
}

type UpdateItemRequest struct {
	Name       *string `json:"name"`
	Link       *string `json:"link"`
	ImageURL   *string `json:"image_url"`
	CategoryID *string `json:"category_id"`
	RoomID     *string `json:"room_id"`
	CompanyID  *string `json:"company_id"`
	Quantity   *int64  `json:"quantity"`
	Priority   *int    `json:"priority"`
	Notes      *string `json:"notes"`
}

func (r UpdateItemRequest) ToUpdate() usecase.ItemUpdate {
	return usecase.ItemUpdate{
		Name:       r.Name,
		Link:       r.Link,
		ImageURL:   r.ImageURL,
		CategoryID: r.CategoryID,
		RoomID:     r.RoomID,
		CompanyID:  r.CompanyID,
		Quantity:   r.Quantity,
		Priority:   r.Priority,
		Notes:      r.Notes,
	}
}

// PurchaseRequest flips the purchased flag; actual_unit_cents, when given
// on a purchase, is recorded on the latest price record.

type PurchaseRequest struct {
	Purchased       bool   `json:"purchased"`
	ActualUnitCents *int64 `json:"actual_unit_cents"`
}

// PriceRequest records a re-estimate.

type PriceRequest struct {
	EstUnitCents int64 `json:"est_unit_cents"`
}

type CategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type RoomRequest struct {
	Name string `json:"name" binding:"required"`
}
