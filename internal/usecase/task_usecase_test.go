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

func TestTaskUseCase_Create(t *testing.T) {
	t.Run("invalid title", func(t *testing.T) {
		uc := NewTaskUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), NewTaskInput{WorkspaceID: "ws-1", Title: "  ", AssignedTo: "me"})
		if !errors.Is(err, ErrInvalidTaskTitle) {
			t.Fatalf("expected ErrInvalidTaskTitle, got %v", err)
		}
	})

	t.Run("invalid assignee", func(t *testing.T) {
		uc := NewTaskUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), NewTaskInput{WorkspaceID: "ws-1", Title: "Pack dishes", AssignedTo: "someone"})
		if !errors.Is(err, ErrInvalidAssignedTo) {
			t.Fatalf("expected ErrInvalidAssignedTo, got %v", err)
		}
	})

	t.Run("defaults priority to medium", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewTaskUseCase(taskRepo, nil, nil)

		taskRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Task{})).DoAndReturn(
			func(_ context.Context, task entities.Task) (entities.Task, error) {
				if task.ID == "" || task.Title != "Pack dishes" {
					t.Fatalf("unexpected task: %+v", task)
				}
				if task.Priority != 2 || task.AssignedTo != entities.AssignedToBoth {
					t.Fatalf("expected priority 2 assigned both, got %+v", task)
				}
				return task, nil
			},
		)

		res, err := uc.Create(context.Background(), NewTaskInput{WorkspaceID: "ws-1", Title: " Pack dishes ", AssignedTo: "both"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Done {
			t.Fatalf("expected new task to be open")
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		categoryRepo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewTaskUseCase(nil, categoryRepo, nil)

		categoryRepo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(entities.Category{}, nil)

		_, err := uc.Create(context.Background(), NewTaskInput{WorkspaceID: "ws-1", Title: "Pack dishes", AssignedTo: "me", CategoryID: "cat-1"})
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestTaskUseCase_ListByWorkspaceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
	uc := NewTaskUseCase(taskRepo, nil, nil)

	soon := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	taskRepo.EXPECT().ListByWorkspaceID(gomock.Any(), "ws-1").Return([]entities.Task{
		{ID: "t-done", Priority: 1, Done: true},
		{ID: "t-undated", Priority: 1},
		{ID: "t-later", Priority: 1, DueDate: &later},
		{ID: "t-low", Priority: 3, DueDate: &soon},
		{ID: "t-soon", Priority: 1, DueDate: &soon},
	}, nil)

	tasks, err := uc.ListByWorkspaceID(context.Background(), "ws-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make([]string, len(tasks))
	for i, task := range tasks {
		got[i] = task.ID
	}
	want := []string{"t-soon", "t-later", "t-undated", "t-low", "t-done"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: got %v, want %v", got, want)
		}
	}
}

func TestTaskUseCase_SetDone(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewTaskUseCase(taskRepo, nil, nil)

		taskRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Task{}, nil)

		_, err := uc.SetDone(context.Background(), "t-1", true)
		if !errors.Is(err, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		uc := NewTaskUseCase(taskRepo, nil, nil)

		taskRepo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Task{ID: "t-1", WorkspaceID: "ws-1"}, nil)
		taskRepo.EXPECT().SetDone(gomock.Any(), "t-1", true).Return(entities.Task{ID: "t-1", WorkspaceID: "ws-1", Done: true}, nil)

		res, err := uc.SetDone(context.Background(), "t-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Done {
			t.Fatalf("expected done task")
		}
	})
}
