package response

import (
	"time"

	"moveplanner/internal/domain/entities"
)

const dateLayout = "2006-01-02"

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

type WorkspaceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Zip             string    `json:"zip,omitempty"`
	Currency        string    `json:"currency"`
	SalesTaxRatePct float64   `json:"sales_tax_rate_pct"`
	MoveInDate      *string   `json:"move_in_date,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromWorkspace(w entities.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:              w.ID,
		Name:            w.Name,
		Zip:             w.Zip,
		Currency:        w.Currency,
		SalesTaxRatePct: w.SalesTaxRatePct,
		MoveInDate:      formatDatePtr(w.MoveInDate),
		CreatedBy:       w.CreatedBy,
		CreatedAt:       w.CreatedAt,
	}
}

type MemberResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMember(m entities.Member) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        m.Role,
		CreatedAt:   m.CreatedAt,
	}
}

func FromMembers(members []entities.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, FromMember(m))
	}
	return out
}

type InvitationResponse struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromInvitation(i entities.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:          i.ID,
		WorkspaceID: i.WorkspaceID,
		Email:       i.Email,
		Status:      string(i.Status),
		ExpiresAt:   i.ExpiresAt,
		CreatedAt:   i.CreatedAt,
	}
}

func FromInvitations(invitations []entities.Invitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(invitations))
	for _, i := range invitations {
		out = append(out, FromInvitation(i))
	}
	return out
}

// DaysUntilMoveResponse is the move-in countdown. Days is negative once
// the move-in date has passed; Set is false when no date is configured.

type DaysUntilMoveResponse struct {
	Days int  `json:"days"`
	Set  bool `json:"set"`
}

type ActivityEntryResponse struct {
	ID          string                 `json:"id"`
	WorkspaceID string                 `json:"workspace_id"`
	ActorID     string                 `json:"actor_id,omitempty"`
	Type        string                 `json:"type"`
	Entity      string                 `json:"entity"`
	EntityID    string                 `json:"entity_id,omitempty"`
	Payload     map[string]interface{} `json:"payload,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

func FromActivityEntries(entries []entities.ActivityEntry) []ActivityEntryResponse {
	out := make([]ActivityEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ActivityEntryResponse{
			ID:          e.ID,
			WorkspaceID: e.WorkspaceID,
			ActorID:     e.ActorID,
			Type:        e.Type,
			Entity:      e.Entity,
			EntityID:    e.EntityID,
			Payload:     e.Payload,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out
}
