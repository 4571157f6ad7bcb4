package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskID     = errors.New("invalid task id")
	ErrInvalidTaskTitle  = errors.New("invalid task title")
	ErrInvalidAssignedTo = errors.New("assigned_to must be me, him or both")
)

// NewTaskInput is the creation payload. Priority 0 means "not given" and
// defaults to medium.

type NewTaskInput struct {
	WorkspaceID string
	Title       string
	AssignedTo  string
	CategoryID  string
	DueDate     string
	Priority    int
	Notes       string
}

// TaskUpdate carries editable task fields; nil leaves a field unchanged.

type TaskUpdate struct {
	Title      *string
	AssignedTo *string
	CategoryID *string
	DueDate    *string // date string, empty clears
	Priority   *int
	Notes      *string
}

type ITaskUseCase interface {
	Create(ctx context.Context, in NewTaskInput) (entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Task, error)
	Update(ctx context.Context, id string, upd TaskUpdate) (entities.Task, error)
	SetDone(ctx context.Context, id string, done bool) (entities.Task, error)
	Delete(ctx context.Context, id string) error
}

type TaskUseCase struct {
	taskRepo     interfaces.ITaskRepository
	categoryRepo interfaces.ICategoryRepository
	activityLog  interfaces.IActivityLogRepository
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(
	taskRepo interfaces.ITaskRepository,
	categoryRepo interfaces.ICategoryRepository,
	activityLog interfaces.IActivityLogRepository,
) *TaskUseCase {
	return &TaskUseCase{
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		activityLog:  activityLog,
	}
}

func parseAssignedTo(s string) (entities.AssignedTo, error) {
	switch entities.AssignedTo(strings.TrimSpace(s)) {
	case entities.AssignedToMe:
		return entities.AssignedToMe, nil
	case entities.AssignedToHim:
		return entities.AssignedToHim, nil
	case entities.AssignedToBoth:
		return entities.AssignedToBoth, nil
	default:
		return "", ErrInvalidAssignedTo
	}
}

func (u *TaskUseCase) Create(ctx context.Context, in NewTaskInput) (entities.Task, error) {
	if strings.TrimSpace(in.WorkspaceID) == "" {
		return entities.Task{}, ErrInvalidWorkspaceID
	}
	if strings.TrimSpace(in.Title) == "" {
		return entities.Task{}, ErrInvalidTaskTitle
	}

	assigned, err := parseAssignedTo(in.AssignedTo)
	if err != nil {
		return entities.Task{}, err
	}

	priority := in.Priority
	if priority == 0 {
		priority = 2
	}
	if priority < 1 || priority > 3 {
		return entities.Task{}, ErrInvalidPriority
	}

	task := entities.Task{
		ID:          uuid.NewString(),
		WorkspaceID: strings.TrimSpace(in.WorkspaceID),
		Title:       strings.TrimSpace(in.Title),
		AssignedTo:  assigned,
		Priority:    priority,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   time.Now().UTC(),
	}

	if in.CategoryID != "" {
		cat, err := u.categoryRepo.GetByID(ctx, strings.TrimSpace(in.CategoryID))
		if err != nil {
			return entities.Task{}, err
		}
		if cat.ID == "" {
			return entities.Task{}, ErrCategoryNotFound
		}
		task.CategoryID = cat.ID
	}
	if in.DueDate != "" {
		due, err := parseDate(in.DueDate)
		if err != nil {
			return entities.Task{}, err
		}
		task.DueDate = &due
	}

	created, err := u.taskRepo.Create(ctx, task)
	if err != nil {
		return entities.Task{}, err
	}

	recordActivity(ctx, u.activityLog, created.WorkspaceID, "", "task.created", "task", created.ID, map[string]interface{}{
		"title": created.Title,
	})
	return created, nil
}

func (u *TaskUseCase) GetByID(ctx context.Context, id string) (entities.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}

	task, err := u.taskRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}
	if task.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	return task, nil
}

// ListByWorkspaceID returns open tasks first, each block ordered by
// priority and then due date with undated tasks last.
func (u *TaskUseCase) ListByWorkspaceID(ctx context.Context, workspaceID string) ([]entities.Task, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspaceID
	}

	tasks, err := u.taskRepo.ListByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Done != b.Done {
			return !a.Done
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return false
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})
	return tasks, nil
}

func (u *TaskUseCase) Update(ctx context.Context, id string, upd TaskUpdate) (entities.Task, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}

	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			return entities.Task{}, ErrInvalidTaskTitle
		}
		current.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.AssignedTo != nil {
		assigned, err := parseAssignedTo(*upd.AssignedTo)
		if err != nil {
			return entities.Task{}, err
		}
		current.AssignedTo = assigned
	}
	if upd.CategoryID != nil {
		if *upd.CategoryID == "" {
			current.CategoryID = ""
		} else {
			cat, err := u.categoryRepo.GetByID(ctx, strings.TrimSpace(*upd.CategoryID))
			if err != nil {
				return entities.Task{}, err
			}
			if cat.ID == "" {
				return entities.Task{}, ErrCategoryNotFound
			}
			current.CategoryID = cat.ID
		}
	}
	if upd.DueDate != nil {
		if *upd.DueDate == "" {
			current.DueDate = nil
		} else {
			due, err := parseDate(*upd.DueDate)
			if err != nil {
				return entities.Task{}, err
			}
			current.DueDate = &due
		}
	}
	if upd.Priority != nil {
		if *upd.Priority < 1 || *upd.Priority > 3 {
			return entities.Task{}, ErrInvalidPriority
		}
		current.Priority = *upd.Priority
	}
	if upd.Notes != nil {
		current.Notes = strings.TrimSpace(*upd.Notes)
	}

	return u.taskRepo.Update(ctx, current)
}

func (u *TaskUseCase) SetDone(ctx context.Context, id string, done bool) (entities.Task, error) {
	task, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}

	updated, err := u.taskRepo.SetDone(ctx, task.ID, done)
	if err != nil {
		return entities.Task{}, err
	}

	if done {
		recordActivity(ctx, u.activityLog, updated.WorkspaceID, "", "task.completed", "task", updated.ID, map[string]interface{}{
			"title": updated.Title,
		})
	}
	return updated, nil
}

func (u *TaskUseCase) Delete(ctx context.Context, id string) error {
	task, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(ctx, task.ID)
}
