package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moveplanner/internal/adapter/http/handlers/mocks"
	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkspaceHandler_CreateWorkspace(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkspaceUseCase(ctrl)
		h := NewWorkspaceHandler(uc)

		r := gin.New()
		r.POST("/v1/workspaces", h.CreateWorkspace)

		req := httptest.NewRequest(http.MethodPost, "/v1/workspaces", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid tax rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkspaceUseCase(ctrl)
		h := NewWorkspaceHandler(uc)

		r := gin.New()
		r.POST("/v1/workspaces", h.CreateWorkspace)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Workspace{}, usecase.ErrInvalidSalesTaxRate)

		req := httptest.NewRequest(http.MethodPost, "/v1/workspaces", bytes.NewBufferString(`{"name":"Casa","currency":"USD","sales_tax_rate_pct":8.25,"created_by":"user-1"}`))
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
		uc := mocks.NewMockIWorkspaceUseCase(ctrl)
		h := NewWorkspaceHandler(uc)

		r := gin.New()
		r.POST("/v1/workspaces", h.CreateWorkspace)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.NewWorkspaceInput) (entities.Workspace, error) {
				if in.Name != "Casa Nova" || in.Currency != "USD" || in.CreatedBy != "user-1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Workspace{ID: "ws-1", Name: in.Name, Currency: "USD", CreatedBy: in.CreatedBy}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/workspaces", bytes.NewBufferString(`{"name":"Casa Nova","currency":"USD","sales_tax_rate_pct":0.0825,"created_by":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestWorkspaceHandler_Invite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkspaceUseCase(ctrl)
		h := NewWorkspaceHandler(uc)

		r := gin.New()
		r.POST("/v1/workspaces/:workspace_id/invitations", h.Invite)

		req := httptest.NewRequest(http.MethodPost, "/v1/workspaces/ws-1/invitations", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate pending invitation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkspaceUseCase(ctrl)
		h := NewWorkspaceHandler(uc)

		r := gin.New()
		r.POST("/v1/workspaces/:workspace_id/invitations", h.Invite)

		uc.EXPECT().Invite(gomock.Any(), "ws-1", "partner@example.com").Return(entities.Invitation{}, usecase.ErrDuplicateInvitation)

		req := httptest.NewRequest(http.MethodPost, "/v1/workspaces/ws-1/invitations", bytes.NewBufferString(`{"email":"partner@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkspaceUseCase(ctrl)
		h := NewWorkspaceHandler(uc)

		r := gin.New()
		r.POST("/v1/workspaces/:workspace_id/invitations", h.Invite)

		uc.EXPECT().Invite(gomock.Any(), "ws-1", "partner@example.com").Return(entities.Invitation{
			ID:          "inv-1",
			WorkspaceID: "ws-1",
			Email:       "partner@example.com",
			Status:      entities.InvitationStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workspaces/ws-1/invitations", bytes.NewBufferString(`{"email":"partner@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestWorkspaceHandler_RemoveMember(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("creator cannot be removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkspaceUseCase(ctrl)
		h := NewWorkspaceHandler(uc)

		r := gin.New()
		r.DELETE("/v1/members/:member_id", h.RemoveMember)

		uc.EXPECT().RemoveMember(gomock.Any(), "mem-creator").Return(usecase.ErrCannotRemoveCreator)

		req := httptest.NewRequest(http.MethodDelete, "/v1/members/mem-creator", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkspaceUseCase(ctrl)
		h := NewWorkspaceHandler(uc)

		r := gin.New()
		r.DELETE("/v1/members/:member_id", h.RemoveMember)

		uc.EXPECT().RemoveMember(gomock.Any(), "mem-2").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/members/mem-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestWorkspaceHandler_DaysUntilMove(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkspaceUseCase(ctrl)
	h := NewWorkspaceHandler(uc)

	r := gin.New()
	r.GET("/v1/workspaces/:workspace_id/days-until-move", h.DaysUntilMove)

	uc.EXPECT().DaysUntilMove(gomock.Any(), "ws-1").Return(0, nil)
	uc.EXPECT().GetByID(gomock.Any(), "ws-1").Return(entities.Workspace{ID: "ws-1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/workspaces/ws-1/days-until-move", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["set"] != false {
		t.Fatalf("expected set=false when no move-in date, got %v", body)
	}
}
