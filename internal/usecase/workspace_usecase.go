package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"moveplanner/internal/domain/budgeting"
	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWorkspaceNotFound      = errors.New("workspace not found")
	ErrInvalidWorkspaceID     = errors.New("invalid workspace id")
	ErrInvalidWorkspaceName   = errors.New("invalid workspace name")
	ErrInvalidCurrency        = errors.New("invalid currency")
	ErrInvalidSalesTaxRate    = errors.New("sales tax rate must be a fraction between 0 and 1")
	ErrMemberNotFound         = errors.New("member not found")
	ErrInvalidMemberID        = errors.New("invalid member id")
	ErrCannotRemoveCreator    = errors.New("workspace creator cannot be removed")
	ErrInvalidInvitationEmail = errors.New("invalid invitation email")
	ErrDuplicateInvitation    = errors.New("a pending invitation for this email already exists")
	ErrInvitationNotFound     = errors.New("invitation not found")
	ErrInvalidInvitationID    = errors.New("invalid invitation id")
)

const invitationTTL = 7 * 24 * time.Hour

// Seed tags for brand-new workspaces.
var defaultCategories = []entities.Category{
	{Name: "Essentials", Color: "#ef4444"},
	{Name: "Decor", Color: "#f97316"},
	{Name: "Appliances", Color: "#eab308"},
	{Name: "Furniture", Color: "#22c55e"},
	{Name: "Cleaning", Color: "#06b6d4"},
	{Name: "Pantry", Color: "#8b5cf6"},
	{Name: "Storage", Color: "#ec4899"},
}

var defaultRooms = []string{
	"Bedroom",
	"Bedroom Closet",
	"Bath",
	"Kitchen",
	"Dining Room",
	"Patio",
	"Den",
	"Den Closet",
	"Living Room",
	"None",
}

// NewWorkspaceInput is the onboarding payload. SalesTaxRatePct is a
// decimal fraction at this boundary already; the UI's percent inputs are
// converted client-side.

type NewWorkspaceInput struct {
	Name            string
	Zip             string
	Currency        string
	SalesTaxRatePct float64
	MoveInDate      string
	CreatedBy       string
}

// WorkspaceUpdate carries editable workspace settings; nil leaves a field
// unchanged.

type WorkspaceUpdate struct {
	Name            *string
	Zip             *string
	Currency        *string
	SalesTaxRatePct *float64
	MoveInDate      *string // date string, empty clears
}

// IWorkspaceUseCase exposes the tenant lifecycle: onboarding with seeded
// defaults, settings, the move countdown, members and invitations, and
// the activity feed.

type IWorkspaceUseCase interface {
	Create(ctx context.Context, in NewWorkspaceInput) (entities.Workspace, error)
	GetByID(ctx context.Context, id string) (entities.Workspace, error)
	Update(ctx context.Context, id string, upd WorkspaceUpdate) (entities.Workspace, error)
	DaysUntilMove(ctx context.Context, id string) (int, error)

	ListMembers(ctx context.Context, workspaceID string) ([]entities.Member, error)
	RemoveMember(ctx context.Context, memberID string) error

	Invite(ctx context.Context, workspaceID, email string) (entities.Invitation, error)
	ListPendingInvitations(ctx context.Context, workspaceID string) ([]entities.Invitation, error)
	CancelInvitation(ctx context.Context, invitationID string) error

	Activity(ctx context.Context, workspaceID string) ([]entities.ActivityEntry, error)
}

type WorkspaceUseCase struct {
	workspaceRepo  interfaces.IWorkspaceRepository
	memberRepo     interfaces.IMemberRepository
	invitationRepo interfaces.IInvitationRepository
	categoryRepo   interfaces.ICategoryRepository
	roomRepo       interfaces.IRoomRepository
	budgetRepo     interfaces.IRoomBudgetRepository
	activityLog    interfaces.IActivityLogRepository
}

var _ IWorkspaceUseCase = (*WorkspaceUseCase)(nil)

func NewWorkspaceUseCase(
	workspaceRepo interfaces.IWorkspaceRepository,
	memberRepo interfaces.IMemberRepository,
	invitationRepo interfaces.IInvitationRepository,
	categoryRepo interfaces.ICategoryRepository,
	roomRepo interfaces.IRoomRepository,
	budgetRepo interfaces.IRoomBudgetRepository,
	activityLog interfaces.IActivityLogRepository,
) *WorkspaceUseCase {
	return &WorkspaceUseCase{
		workspaceRepo:  workspaceRepo,
		memberRepo:     memberRepo,
		invitationRepo: invitationRepo,
		categoryRepo:   categoryRepo,
		roomRepo:       roomRepo,
		budgetRepo:     budgetRepo,
		activityLog:    activityLog,
	}
}

// Create onboards a workspace: the record itself, the creator as first
// member, the default category and room tags, and a zero budget per
// seeded room so the budget view works from day one.
func (u *WorkspaceUseCase) Create(ctx context.Context, in NewWorkspaceInput) (entities.Workspace, error) {
	if strings.TrimSpace(in.Name) == "" {
		return entities.Workspace{}, ErrInvalidWorkspaceName
	}
	if len(strings.TrimSpace(in.Currency)) != 3 {
		return entities.Workspace{}, ErrInvalidCurrency
	}
	if in.SalesTaxRatePct < 0 || in.SalesTaxRatePct > 1 {
		return entities.Workspace{}, ErrInvalidSalesTaxRate
	}
	if strings.TrimSpace(in.CreatedBy) == "" {
		return entities.Workspace{}, errors.New("created_by is required")
	}

	now := time.Now().UTC()
	ws := entities.Workspace{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(in.Name),
		Zip:             strings.TrimSpace(in.Zip),
		Currency:        strings.ToUpper(strings.TrimSpace(in.Currency)),
		SalesTaxRatePct: in.SalesTaxRatePct,
		CreatedBy:       strings.TrimSpace(in.CreatedBy),
		CreatedAt:       now,
	}
	if in.MoveInDate != "" {
		moveIn, err := parseDate(in.MoveInDate)
		if err != nil {
			return entities.Workspace{}, err
		}
		ws.MoveInDate = &moveIn
	}

	created, err := u.workspaceRepo.Create(ctx, ws)
	if err != nil {
		return entities.Workspace{}, err
	}

	if _, err := u.memberRepo.Create(ctx, entities.Member{
		ID:          uuid.NewString(),
		WorkspaceID: created.ID,
		UserID:      created.CreatedBy,
		Role:        "member",
		CreatedAt:   now,
	}); err != nil {
		return entities.Workspace{}, err
	}

	for _, c := range defaultCategories {
		if _, err := u.categoryRepo.Create(ctx, entities.Category{
			ID:          uuid.NewString(),
			WorkspaceID: created.ID,
			Name:        c.Name,
			Color:       c.Color,
		}); err != nil {
			return entities.Workspace{}, err
		}
	}

	for _, name := range defaultRooms {
		room, err := u.roomRepo.Create(ctx, entities.Room{
			ID:          uuid.NewString(),
			WorkspaceID: created.ID,
			Name:        name,
		})
		if err != nil {
			return entities.Workspace{}, err
		}
		if _, err := u.budgetRepo.Create(ctx, entities.RoomBudget{
			ID:                  uuid.NewString(),
			WorkspaceID:         created.ID,
			RoomID:              room.ID,
			PlannedCents:        0,
			SavingsTargetSource: entities.SavingsTargetPlanned,
		}); err != nil {
			return entities.Workspace{}, err
		}
	}

	log.Printf("[workspace][usecase] created workspace_id=%s name=%q", created.ID, created.Name)
	recordActivity(ctx, u.activityLog, created.ID, created.CreatedBy, "workspace.created", "workspace", created.ID, map[string]interface{}{
		"name": created.Name,
	})
	return created, nil
}

func (u *WorkspaceUseCase) GetByID(ctx context.Context, id string) (entities.Workspace, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Workspace{}, ErrInvalidWorkspaceID
	}

	ws, err := u.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Workspace{}, err
	}
	if ws.ID == "" {
		return entities.Workspace{}, ErrWorkspaceNotFound
	}
	return ws, nil
}

func (u *WorkspaceUseCase) Update(ctx context.Context, id string, upd WorkspaceUpdate) (entities.Workspace, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Workspace{}, err
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return entities.Workspace{}, ErrInvalidWorkspaceName
		}
		current.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Zip != nil {
		current.Zip = strings.TrimSpace(*upd.Zip)
	}
	if upd.Currency != nil {
		if len(strings.TrimSpace(*upd.Currency)) != 3 {
			return entities.Workspace{}, ErrInvalidCurrency
		}
		current.Currency = strings.ToUpper(strings.TrimSpace(*upd.Currency))
	}
	if upd.SalesTaxRatePct != nil {
		if *upd.SalesTaxRatePct < 0 || *upd.SalesTaxRatePct > 1 {
			return entities.Workspace{}, ErrInvalidSalesTaxRate
		}
		current.SalesTaxRatePct = *upd.SalesTaxRatePct
	}
	if upd.MoveInDate != nil {
		if *upd.MoveInDate == "" {
			current.MoveInDate = nil
		} else {
			moveIn, err := parseDate(*upd.MoveInDate)
			if err != nil {
				return entities.Workspace{}, err
			}
			current.MoveInDate = &moveIn
		}
	}

	updated, err := u.workspaceRepo.Update(ctx, current)
	if err != nil {
		return entities.Workspace{}, err
	}

	recordActivity(ctx, u.activityLog, updated.ID, "", "workspace.updated", "workspace", updated.ID, nil)
	return updated, nil
}

func (u *WorkspaceUseCase) DaysUntilMove(ctx context.Context, id string) (int, error) {
	ws, err := u.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return budgeting.DaysUntilMove(ws.MoveInDate, time.Now().UTC()), nil
}

func (u *WorkspaceUseCase) ListMembers(ctx context.Context, workspaceID string) ([]entities.Member, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}
	return u.memberRepo.ListByWorkspaceID(ctx, workspaceID)
}

func (u *WorkspaceUseCase) RemoveMember(ctx context.Context, memberID string) error {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return ErrInvalidMemberID
	}

	member, err := u.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member.ID == "" {
		return ErrMemberNotFound
	}

	ws, err := u.GetByID(ctx, member.WorkspaceID)
	if err != nil {
		return err
	}
	if ws.CreatedBy == member.UserID {
		return ErrCannotRemoveCreator
	}

	if err := u.memberRepo.Delete(ctx, memberID); err != nil {
		return err
	}
	recordActivity(ctx, u.activityLog, ws.ID, "", "member.removed", "member", memberID, map[string]interface{}{
		"user_id": member.UserID,
	})
	return nil
}

func (u *WorkspaceUseCase) Invite(ctx context.Context, workspaceID, email string) (entities.Invitation, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.Invitation{}, ErrInvalidInvitationEmail
	}

	ws, err := u.GetByID(ctx, workspaceID)
	if err != nil {
		return entities.Invitation{}, err
	}

	existing, err := u.invitationRepo.ListByWorkspaceID(ctx, ws.ID)
	if err != nil {
		return entities.Invitation{}, err
	}
	for _, inv := range existing {
		if inv.Status == entities.InvitationStatusPending && inv.Email == email {
			return entities.Invitation{}, ErrDuplicateInvitation
		}
	}

	now := time.Now().UTC()
	expires := now.Add(invitationTTL)
	created, err := u.invitationRepo.Create(ctx, entities.Invitation{
		ID:          uuid.NewString(),
		WorkspaceID: ws.ID,
		Email:       email,
		Status:      entities.InvitationStatusPending,
		ExpiresAt:   &expires,
		CreatedAt:   now,
	})
	if err != nil {
		return entities.Invitation{}, err
	}

	recordActivity(ctx, u.activityLog, ws.ID, "", "invitation.sent", "invitation", created.ID, map[string]interface{}{
		"email": email,
	})
	return created, nil
}

func (u *WorkspaceUseCase) ListPendingInvitations(ctx context.Context, workspaceID string) ([]entities.Invitation, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}

	all, err := u.invitationRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	pending := make([]entities.Invitation, 0, len(all))
	for _, inv := range all {
		if inv.Status == entities.InvitationStatusPending {
			pending = append(pending, inv)
		}
	}
	return pending, nil
}

func (u *WorkspaceUseCase) CancelInvitation(ctx context.Context, invitationID string) error {
	invitationID = strings.TrimSpace(invitationID)
	if invitationID == "" {
		return ErrInvalidInvitationID
	}

	inv, err := u.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if inv.ID == "" {
		return ErrInvitationNotFound
	}

	_, err = u.invitationRepo.UpdateStatus(ctx, invitationID, entities.InvitationStatusCancelled)
	return err
}

// Activity returns the workspace feed, most recent first.
func (u *WorkspaceUseCase) Activity(ctx context.Context, workspaceID string) ([]entities.ActivityEntry, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}
	return u.activityLog.ListByWorkspaceID(ctx, workspaceID)
}
