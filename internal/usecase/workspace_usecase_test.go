package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"moveplanner/internal/domain/entities"
	mock_interfaces "moveplanner/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkspaceUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewWorkspaceUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), NewWorkspaceInput{Name: "  ", Currency: "USD", CreatedBy: "u-1"})
		if !errors.Is(err, ErrInvalidWorkspaceName) {
			t.Fatalf("expected ErrInvalidWorkspaceName, got %v", err)
		}
	})

	t.Run("invalid currency", func(t *testing.T) {
		uc := NewWorkspaceUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), NewWorkspaceInput{Name: "Our Move", Currency: "DOLLARS", CreatedBy: "u-1"})
		if !errors.Is(err, ErrInvalidCurrency) {
			t.Fatalf("expected ErrInvalidCurrency, got %v", err)
		}
	})

	t.Run("tax rate out of range", func(t *testing.T) {
		uc := NewWorkspaceUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), NewWorkspaceInput{Name: "Our Move", Currency: "USD", SalesTaxRatePct: 8.25, CreatedBy: "u-1"})
		if !errors.Is(err, ErrInvalidSalesTaxRate) {
			t.Fatalf("expected ErrInvalidSalesTaxRate, got %v", err)
		}
	})

	t.Run("seeds member, categories, rooms and budgets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workspaceRepo := mock_interfaces.NewMockIWorkspaceRepository(ctrl)
		memberRepo := mock_interfaces.NewMockIMemberRepository(ctrl)
		categoryRepo := mock_interfaces.NewMockICategoryRepository(ctrl)
		roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
		budgetRepo := mock_interfaces.NewMockIRoomBudgetRepository(ctrl)
		uc := NewWorkspaceUseCase(workspaceRepo, memberRepo, nil, categoryRepo, roomRepo, budgetRepo, nil)

		workspaceRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Workspace{})).DoAndReturn(
			func(_ context.Context, w entities.Workspace) (entities.Workspace, error) {
				if w.ID == "" || w.Name != "Our Move" || w.Currency != "USD" {
					t.Fatalf("unexpected workspace: %+v", w)
				}
				if w.SalesTaxRatePct != 0.0825 {
					t.Fatalf("expected tax rate 0.0825, got %v", w.SalesTaxRatePct)
				}
				return w, nil
			},
		)
		memberRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Member{})).DoAndReturn(
			func(_ context.Context, m entities.Member) (entities.Member, error) {
				if m.UserID != "u-1" || m.Role != "member" {
					t.Fatalf("unexpected member: %+v", m)
				}
				return m, nil
			},
		)

		var categories []string
		categoryRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Category{})).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) {
				categories = append(categories, c.Name)
				return c, nil
			},
		).Times(7)

		var rooms []string
		roomRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Room{})).DoAndReturn(
			func(_ context.Context, r entities.Room) (entities.Room, error) {
				rooms = append(rooms, r.Name)
				return r, nil
			},
		).Times(10)
		budgetRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RoomBudget{})).DoAndReturn(
			func(_ context.Context, b entities.RoomBudget) (entities.RoomBudget, error) {
				if b.PlannedCents != 0 {
					t.Fatalf("expected zero planned budget, got %d", b.PlannedCents)
				}
				return b, nil
			},
		).Times(10)

		ws, err := uc.Create(context.Background(), NewWorkspaceInput{
			Name:            " Our Move ",
			Currency:        "usd",
			SalesTaxRatePct: 0.0825,
			MoveInDate:      "2026-11-15",
			CreatedBy:       "u-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ws.MoveInDate == nil || ws.MoveInDate.Format("2006-01-02") != "2026-11-15" {
			t.Fatalf("unexpected move-in date: %v", ws.MoveInDate)
		}
		if categories[0] != "Essentials" || rooms[0] != "Bedroom" {
			t.Fatalf("unexpected seed order: %v / %v", categories[0], rooms[0])
		}
	})
}

func TestWorkspaceUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workspaceRepo := mock_interfaces.NewMockIWorkspaceRepository(ctrl)
	uc := NewWorkspaceUseCase(workspaceRepo, nil, nil, nil, nil, nil, nil)

	moveIn := time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)
	workspaceRepo.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workspace{
		ID: "ws-1", Name: "Our Move", Currency: "USD", MoveInDate: &moveIn,
	}, nil)
	workspaceRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Workspace{})).DoAndReturn(
		func(_ context.Context, w entities.Workspace) (entities.Workspace, error) {
			if w.Name != "New Place" || w.MoveInDate != nil {
				t.Fatalf("unexpected workspace: %+v", w)
			}
			return w, nil
		},
	)

	name := "New Place"
	clear := ""
	res, err := uc.Update(context.Background(), "ws-1", WorkspaceUpdate{Name: &name, MoveInDate: &clear})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Name != "New Place" {
		t.Fatalf("expected New Place, got %q", res.Name)
	}
}

func TestWorkspaceUseCase_RemoveMember(t *testing.T) {
	t.Run("creator is protected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workspaceRepo := mock_interfaces.NewMockIWorkspaceRepository(ctrl)
		memberRepo := mock_interfaces.NewMockIMemberRepository(ctrl)
		uc := NewWorkspaceUseCase(workspaceRepo, memberRepo, nil, nil, nil, nil, nil)

		memberRepo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Member{ID: "m-1", WorkspaceID: "ws-1", UserID: "u-1"}, nil)
		workspaceRepo.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workspace{ID: "ws-1", CreatedBy: "u-1"}, nil)

		err := uc.RemoveMember(context.Background(), "m-1")
		if !errors.Is(err, ErrCannotRemoveCreator) {
			t.Fatalf("expected ErrCannotRemoveCreator, got %v", err)
		}
	})

	t.Run("removes a regular member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workspaceRepo := mock_interfaces.NewMockIWorkspaceRepository(ctrl)
		memberRepo := mock_interfaces.NewMockIMemberRepository(ctrl)
		uc := NewWorkspaceUseCase(workspaceRepo, memberRepo, nil, nil, nil, nil, nil)

		memberRepo.EXPECT().GetByID(gomock.Any(), "m-2").Return(entities.Member{ID: "m-2", WorkspaceID: "ws-1", UserID: "u-2"}, nil)
		workspaceRepo.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workspace{ID: "ws-1", CreatedBy: "u-1"}, nil)
		memberRepo.EXPECT().Delete(gomock.Any(), "m-2").Return(nil)

		if err := uc.RemoveMember(context.Background(), "m-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkspaceUseCase_Invite(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewWorkspaceUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Invite(context.Background(), "ws-1", "not-an-email")
		if !errors.Is(err, ErrInvalidInvitationEmail) {
			t.Fatalf("expected ErrInvalidInvitationEmail, got %v", err)
		}
	})

	t.Run("duplicate pending invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workspaceRepo := mock_interfaces.NewMockIWorkspaceRepository(ctrl)
		invitationRepo := mock_interfaces.NewMockIInvitationRepository(ctrl)
		uc := NewWorkspaceUseCase(workspaceRepo, nil, invitationRepo, nil, nil, nil, nil)

		workspaceRepo.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workspace{ID: "ws-1"}, nil)
		invitationRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return([]entities.Invitation{
			{ID: "inv-1", Email: "partner@example.com", Status: entities.InvitationStatusPending},
		}, nil)

		_, err := uc.Invite(context.Background(), "ws-1", "Partner@Example.com ")
		if !errors.Is(err, ErrDuplicateInvitation) {
			t.Fatalf("expected ErrDuplicateInvitation, got %v", err)
		}
	})

	t.Run("creates a pending invitation with expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workspaceRepo := mock_interfaces.NewMockIWorkspaceRepository(ctrl)
		invitationRepo := mock_interfaces.NewMockIInvitationRepository(ctrl)
		uc := NewWorkspaceUseCase(workspaceRepo, nil, invitationRepo, nil, nil, nil, nil)

		workspaceRepo.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workspace{ID: "ws-1"}, nil)
		invitationRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return([]entities.Invitation{
			{ID: "inv-0", Email: "partner@example.com", Status: entities.InvitationStatusCancelled},
		}, nil)
		invitationRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invitation{})).DoAndReturn(
			func(_ context.Context, inv entities.Invitation) (entities.Invitation, error) {
				if inv.Email != "partner@example.com" || inv.Status != entities.InvitationStatusPending {
					t.Fatalf("unexpected invitation: %+v", inv)
				}
				if inv.ExpiresAt == nil {
					t.Fatalf("expected expiry to be set")
				}
				ttl := inv.ExpiresAt.Sub(inv.CreatedAt)
				if ttl != 7*24*time.Hour {
					t.Fatalf("expected 7 day expiry, got %v", ttl)
				}
				return inv, nil
			},
		)

		res, err := uc.Invite(context.Background(), "ws-1", "partner@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.InvitationStatusPending {
			t.Fatalf("expected pending invitation, got %s", res.Status)
		}
	})
}

func TestWorkspaceUseCase_CancelInvitation(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invitationRepo := mock_interfaces.NewMockIInvitationRepository(ctrl)
		uc := NewWorkspaceUseCase(nil, nil, invitationRepo, nil, nil, nil, nil)

		invitationRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invitation{}, nil)

		err := uc.CancelInvitation(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvitationNotFound) {
			t.Fatalf("expected ErrInvitationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invitationRepo := mock_interfaces.NewMockIInvitationRepository(ctrl)
		uc := NewWorkspaceUseCase(nil, nil, invitationRepo, nil, nil, nil, nil)

		invitationRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invitation{ID: "inv-1"}, nil)
		invitationRepo.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvitationStatusCancelled).Return(entities.Invitation{ID: "inv-1", Status: entities.InvitationStatusCancelled}, nil)

		if err := uc.CancelInvitation(context.Background(), "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
