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

func TestTaskHandler_CreateTask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid assignee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.POST("/v1/workspaces/:workspace_id/tasks", h.CreateTask)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Task{}, usecase.ErrInvalidAssignedTo)

		req := httptest.NewRequest(http.MethodPost, "/v1/workspaces/ws-1/tasks", bytes.NewBufferString(`{"title":"Book movers","assigned_to":"them"}`))
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
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		r := gin.New()
		r.POST("/v1/workspaces/:workspace_id/tasks", h.CreateTask)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.NewTaskInput) (entities.Task, error) {
				if in.WorkspaceID != "ws-1" || in.Title != "Book movers" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Task{ID: "task-1", WorkspaceID: in.WorkspaceID, Title: in.Title, AssignedTo: entities.AssignedToBoth, Priority: 2}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/workspaces/ws-1/tasks", bytes.NewBufferString(`{"title":"Book movers","assigned_to":"both"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTaskHandler_SetDone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITaskUseCase(ctrl)
	h := NewTaskHandler(uc)

	r := gin.New()
	r.POST("/v1/tasks/:task_id/done", h.SetDone)

	uc.EXPECT().SetDone(gomock.Any(), "task-1", true).Return(entities.Task{ID: "task-1", Title: "Book movers", Done: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/tasks/task-1/done", bytes.NewBufferString(`{"done":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["done"] != true {
		t.Fatalf("expected done=true, got %v", body)
	}
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITaskUseCase(ctrl)
	h := NewTaskHandler(uc)

	r := gin.New()
	r.DELETE("/v1/tasks/:task_id", h.DeleteTask)

	uc.EXPECT().Delete(gomock.Any(), "task-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/tasks/task-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
