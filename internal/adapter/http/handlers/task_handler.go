package handlers

import (
	"errors"
	request "moveplanner/internal/adapter/http/dto/request"
	response "moveplanner/internal/adapter/http/dto/response"
	"moveplanner/internal/usecase"
	"moveplanner/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTaskPayload = pkg.NewDomainErrorSimple("INVALID_TASK_INPUT", "Invalid task payload", http.StatusBadRequest)
)

// TaskHandler handles HTTP requests for the to-do list.

type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var payload request.CreateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	task, err := h.usecase.Create(c.Request.Context(), payload.ToInput(c.Param("workspace_id")))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTask(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.usecase.GetByID(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTask(task))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.usecase.ListByWorkspaceID(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTasks(tasks))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var payload request.UpdateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	task, err := h.usecase.Update(c.Request.Context(), c.Param("task_id"), payload.ToUpdate())
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTask(task))
}

func (h *TaskHandler) SetDone(c *gin.Context) {
	var payload request.DoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	task, err := h.usecase.SetDone(c.Request.Context(), c.Param("task_id"), payload.Done)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTask(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("task_id")); err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkspaceID),
		errors.Is(err, usecase.ErrInvalidTaskID),
		errors.Is(err, usecase.ErrInvalidTaskTitle),
		errors.Is(err, usecase.ErrInvalidAssignedTo),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkspaceNotFound):
		return pkg.NewDomainErrorSimple("WORKSPACE_NOT_FOUND", "Workspace not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
