package entities

import "time"

// ActivityEntry records who changed what in a workspace. Payload keeps the
// mutation-specific details as a free-form document for traceability.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (workspace_id-index): workspace_id

type ActivityEntry struct {
	ID          string                 `json:"id"`
	WorkspaceID string                 `json:"workspace_id"`
	ActorID     string                 `json:"actor_id,omitempty"`
	Type        string                 `json:"type"`
	Entity      string                 `json:"entity"`
	EntityID    string                 `json:"entity_id,omitempty"`
	Payload     map[string]interface{} `json:"payload,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}
