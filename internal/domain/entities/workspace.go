package entities

import "time"

// Workspace is the tenant boundary of the planner. Every other entity is
// scoped by WorkspaceID; cross-workspace reads are never served.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - SalesTaxRatePct is a decimal fraction (0.0825 == 8.25%), never a
//     whole-number percentage. All amounts elsewhere are integer cents.

type Workspace struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Zip             string     `json:"zip,omitempty"`
	Currency        string     `json:"currency"`
	SalesTaxRatePct float64    `json:"sales_tax_rate_pct"`
	MoveInDate      *time.Time `json:"move_in_date,omitempty"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Member links a user to a workspace.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (workspace_id-index): workspace_id
//   - GSI2 (user_id-index): user_id

type Member struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

type InvitationStatus string

const (
	InvitationStatusPending   InvitationStatus = "pending"
	InvitationStatusAccepted  InvitationStatus = "accepted"
	InvitationStatusCancelled InvitationStatus = "cancelled"
)

// Invitation is a pending request for a partner to join a workspace.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (workspace_id-index): workspace_id

type Invitation struct {
	ID          string           `json:"id"`
	WorkspaceID string           `json:"workspace_id"`
	Email       string           `json:"email"`
	Status      InvitationStatus `json:"status"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
