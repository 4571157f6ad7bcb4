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
	errInvalidFeeRulePayload = pkg.NewDomainErrorSimple("INVALID_FEE_RULE_INPUT", "Invalid fee rule payload", http.StatusBadRequest)
)

// FeeRuleHandler handles HTTP requests for a company's versioned fee rules.

type FeeRuleHandler struct {
	usecase usecase.IFeeRuleUseCase
}

func NewFeeRuleHandler(uc usecase.IFeeRuleUseCase) *FeeRuleHandler {
	return &FeeRuleHandler{usecase: uc}
}

func (h *FeeRuleHandler) CreateRule(c *gin.Context) {
	var payload request.FeeRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFeeRulePayload.HTTPStatus, errInvalidFeeRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.CreateRule(c.Request.Context(), c.Param("company_id"), payload.ToInput())
	if err != nil {
		appErr := mapFeeRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFeeRule(rule))
}

func (h *FeeRuleHandler) ListRules(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	rules, err := h.usecase.ListRules(c.Request.Context(), c.Param("company_id"), activeOnly)
	if err != nil {
		appErr := mapFeeRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFeeRules(rules))
}

func (h *FeeRuleHandler) DeleteRule(c *gin.Context) {
	if err := h.usecase.DeleteRule(c.Request.Context(), c.Param("rule_id")); err != nil {
		appErr := mapFeeRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapFeeRuleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidFeeRuleID),
		errors.Is(err, usecase.ErrInvalidFeeRuleType),
		errors.Is(err, usecase.ErrInvalidFlatFee),
		errors.Is(err, usecase.ErrInvalidPercentRate),
		errors.Is(err, usecase.ErrMissingTiers),
		errors.Is(err, usecase.ErrInvalidTier),
		errors.Is(err, usecase.ErrDuplicateTierBound):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "Company not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFeeRuleNotFound):
		return pkg.NewDomainErrorSimple("FEE_RULE_NOT_FOUND", "Fee rule not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
