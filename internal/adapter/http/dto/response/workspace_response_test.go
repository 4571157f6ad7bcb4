package response

import (
	"testing"
	"time"

	"moveplanner/internal/domain/entities"
)

func TestFromWorkspace(t *testing.T) {
	moveIn := time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)

	w := entities.Workspace{
		ID:              "ws-1",
		Name:            "Casa Nova",
		Currency:        "USD",
		SalesTaxRatePct: 0.0825,
		MoveInDate:      &moveIn,
		CreatedBy:       "user-1",
	}

	res := FromWorkspace(w)
	if res.ID != "ws-1" || res.Currency != "USD" {
		t.Fatalf("unexpected workspace: %+v", res)
	}
	if res.MoveInDate == nil || *res.MoveInDate != "2026-11-20" {
		t.Fatalf("unexpected move-in date: %v", res.MoveInDate)
	}
}

func TestFromWorkspace_NoMoveInDate(t *testing.T) {
	res := FromWorkspace(entities.Workspace{ID: "ws-1", Name: "Casa Nova", Currency: "USD"})
	if res.MoveInDate != nil {
		t.Fatalf("expected nil move-in date, got %v", res.MoveInDate)
	}
}

func TestFromInvitation(t *testing.T) {
	i := entities.Invitation{
		ID:          "inv-1",
		WorkspaceID: "ws-1",
		Email:       "partner@example.com",
		Status:      entities.InvitationStatusPending,
	}

	res := FromInvitation(i)
	if res.Status != "pending" || res.Email != "partner@example.com" {
		t.Fatalf("unexpected invitation: %+v", res)
	}
}
