package interfaces

import (
	"context"

	"moveplanner/internal/domain/entities"
)

// IWorkspaceRepository abstracts DynamoDB persistence for Workspace.
//
// Lookups follow the not-found convention used across the repositories:
// a zero-ID entity and a nil error mean the row does not exist.

type IWorkspaceRepository interface {
	Create(ctx context.Context, w entities.Workspace) (entities.Workspace, error)
	GetByID(ctx context.Context, id string) (entities.Workspace, error)
	Update(ctx context.Context, w entities.Workspace) (entities.Workspace, error)
}

// IMemberRepository abstracts DynamoDB persistence for workspace members.

type IMemberRepository interface {
	Create(ctx context.Context, m entities.Member) (entities.Member, error)
	GetByID(ctx context.Context, id string) (entities.Member, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Member, error)
	Delete(ctx context.Context, id string) error
}

// IInvitationRepository abstracts DynamoDB persistence for invitations.

type IInvitationRepository interface {
	Create(ctx context.Context, inv entities.Invitation) (entities.Invitation, error)
	GetByID(ctx context.Context, id string) (entities.Invitation, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Invitation, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvitationStatus) (entities.Invitation, error)
}
