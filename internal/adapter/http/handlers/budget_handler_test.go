package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moveplanner/internal/adapter/http/handlers/mocks"
	"moveplanner/internal/domain/budgeting"
	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBudgetHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)

	r := gin.New()
	r.GET("/v1/workspaces/:workspace_id/budgets/summary", h.Summary)

	uc.EXPECT().Summary(gomock.Any(), "ws-1").Return(budgeting.Overview{
		Rooms: []budgeting.RoomSummary{
			{BudgetID: "b-1", RoomID: "room-1", RoomName: "Kitchen", PlannedCents: 10000, SpentCents: 12000},
		},
		TotalPlannedCents: 10000,
		TotalSpentCents:   12000,
		OverBudgetRooms:   []string{"room-1"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/workspaces/ws-1/budgets/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	rooms, ok := body["rooms"].([]interface{})
	if !ok || len(rooms) != 1 {
		t.Fatalf("expected 1 room row, got %v", body["rooms"])
	}
	row := rooms[0].(map[string]interface{})
	if row["over_budget"] != true || row["overage_cents"] != float64(2000) {
		t.Fatalf("unexpected room row: %v", row)
	}
}

func TestBudgetHandler_UpdateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:budget_id", h.UpdateBudget)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("budget not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:budget_id", h.UpdateBudget)

		uc.EXPECT().UpdateBudget(gomock.Any(), "b-missing", gomock.Any()).Return(entities.RoomBudget{}, usecase.ErrRoomBudgetNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-missing", bytes.NewBufferString(`{"planned_cents":50000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:budget_id", h.UpdateBudget)

		uc.EXPECT().UpdateBudget(gomock.Any(), "b-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd usecase.RoomBudgetUpdate) (entities.RoomBudget, error) {
				if upd.PlannedCents == nil || *upd.PlannedCents != 50000 {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return entities.RoomBudget{ID: "b-1", WorkspaceID: "ws-1", RoomID: "room-1", PlannedCents: 50000, SavingsTargetSource: entities.SavingsTargetPlanned}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1", bytes.NewBufferString(`{"planned_cents":50000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestBudgetHandler_CreateDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("zero amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/workspaces/:workspace_id/savings/deposits", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "ws-1", gomock.Any()).Return(entities.SavingsDeposit{}, usecase.ErrZeroDepositAmount)

		req := httptest.NewRequest(http.MethodPost, "/v1/workspaces/ws-1/savings/deposits", bytes.NewBufferString(`{"room_id":"room-1","date":"2026-09-15","amount_cents":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/workspaces/:workspace_id/savings/deposits", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "ws-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.NewDepositInput) (entities.SavingsDeposit, error) {
				if in.RoomID != "room-1" || in.AmountCents != 25000 {
					t.Fatalf("unexpected input: %+v", in)
				}
				d := entities.SavingsDeposit{ID: "dep-1", WorkspaceID: "ws-1", RoomID: in.RoomID, AmountCents: in.AmountCents}
				return d, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/workspaces/ws-1/savings/deposits", bytes.NewBufferString(`{"room_id":"room-1","date":"2026-09-15","amount_cents":25000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestBudgetHandler_ListDeposits(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)

	r := gin.New()
	r.GET("/v1/workspaces/:workspace_id/savings/deposits", h.ListDeposits)

	uc.EXPECT().ListDeposits(gomock.Any(), "ws-1", "room-1").Return([]entities.SavingsDeposit{
		{ID: "dep-1", WorkspaceID: "ws-1", RoomID: "room-1", AmountCents: 25000},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/workspaces/ws-1/savings/deposits?room_id=room-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
