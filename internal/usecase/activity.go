package usecase

import (
	"context"
	"log"
	"time"

	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// recordActivity appends an entry to the workspace feed. The feed is best
// effort: a failed append is logged and never fails the mutation it
// documents.
func recordActivity(ctx context.Context, repo interfaces.IActivityLogRepository, workspaceID, actorID, typ, entity, entityID string, payload map[string]interface{}) {
	if repo == nil || workspaceID == "" {
		return
	}
	_, err := repo.Append(ctx, entities.ActivityEntry{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		ActorID:     actorID,
		Type:        typ,
		Entity:      entity,
		EntityID:    entityID,
		Payload:     payload,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[activity][usecase] append failed workspace_id=%s type=%s err=%v", workspaceID, typ, err)
	}
}
