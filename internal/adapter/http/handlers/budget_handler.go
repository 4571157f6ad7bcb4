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
	errInvalidBudgetPayload  = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
	errInvalidDepositPayload = pkg.NewDomainErrorSimple("INVALID_DEPOSIT_INPUT", "Invalid deposit payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for room budgets, the budget summary
// and the savings ledger.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) InitBudgets(c *gin.Context) {
	budgets, err := h.usecase.InitializeBudgets(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoomBudgets(budgets))
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.ListBudgets(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoomBudgets(budgets))
}

func (h *BudgetHandler) Summary(c *gin.Context) {
	overview, err := h.usecase.Summary(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOverview(overview))
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.UpdateBudget(c.Request.Context(), c.Param("budget_id"), payload.ToUpdate())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoomBudget(budget))
}

func (h *BudgetHandler) CreateDeposit(c *gin.Context) {
	var payload request.DepositRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDepositPayload.HTTPStatus, errInvalidDepositPayload.ToHTTPError())
		return
	}

	deposit, err := h.usecase.CreateDeposit(c.Request.Context(), c.Param("workspace_id"), payload.ToInput())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDeposit(deposit))
}

func (h *BudgetHandler) ListDeposits(c *gin.Context) {
	deposits, err := h.usecase.ListDeposits(c.Request.Context(), c.Param("workspace_id"), c.Query("room_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeposits(deposits))
}

func (h *BudgetHandler) UpdateDeposit(c *gin.Context) {
	var payload request.DepositRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDepositPayload.HTTPStatus, errInvalidDepositPayload.ToHTTPError())
		return
	}

	deposit, err := h.usecase.UpdateDeposit(c.Request.Context(), c.Param("deposit_id"), payload.ToInput())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeposit(deposit))
}

func (h *BudgetHandler) DeleteDeposit(c *gin.Context) {
	if err := h.usecase.DeleteDeposit(c.Request.Context(), c.Param("deposit_id")); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) SavingsGoals(c *gin.Context) {
	goals, err := h.usecase.SavingsGoals(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSavingsGoals(goals))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkspaceID),
		errors.Is(err, usecase.ErrInvalidRoomBudgetID),
		errors.Is(err, usecase.ErrInvalidPlannedAmount),
		errors.Is(err, usecase.ErrInvalidTargetSource),
		errors.Is(err, usecase.ErrInvalidDepositID),
		errors.Is(err, usecase.ErrZeroDepositAmount),
		errors.Is(err, usecase.ErrInvalidRoomID),
		errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkspaceNotFound):
		return pkg.NewDomainErrorSimple("WORKSPACE_NOT_FOUND", "Workspace not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRoomNotFound):
		return pkg.NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRoomBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Room budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSavingsDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Savings deposit not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
