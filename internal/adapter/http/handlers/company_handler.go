package handlers

import (
	"errors"
	request "moveplanner/internal/adapter/http/dto/request"
	response "moveplanner/internal/adapter/http/dto/response"
	"moveplanner/internal/usecase"
	"moveplanner/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCompanyPayload = pkg.NewDomainErrorSimple("INVALID_COMPANY_INPUT", "Invalid company payload", http.StatusBadRequest)
	errInvalidQuoteParams    = pkg.NewDomainErrorSimple("INVALID_QUOTE_PARAMS", "Invalid quote parameters", http.StatusBadRequest)
)

// CompanyHandler handles HTTP requests for vendor companies and their
// order quotes.

type CompanyHandler struct {
	usecase usecase.ICompanyUseCase
}

func NewCompanyHandler(uc usecase.ICompanyUseCase) *CompanyHandler {
	return &CompanyHandler{usecase: uc}
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var payload request.CompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompanyPayload.HTTPStatus, errInvalidCompanyPayload.ToHTTPError())
		return
	}

	company, err := h.usecase.Create(c.Request.Context(), c.Param("workspace_id"), payload.ToInput())
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCompany(company))
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.usecase.ListByWorkspaceID(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompanies(companies))
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.usecase.GetByID(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompany(company))
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var payload request.CompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompanyPayload.HTTPStatus, errInvalidCompanyPayload.ToHTTPError())
		return
	}

	company, err := h.usecase.Update(c.Request.Context(), c.Param("company_id"), payload.ToInput())
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompany(company))
}

func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("company_id")); err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Quote answers GET /companies/:company_id/quote?subtotal_cents=N with an
// optional other_fees_cents param, both integer cents.
func (h *CompanyHandler) Quote(c *gin.Context) {
	subtotal, err := strconv.ParseInt(c.Query("subtotal_cents"), 10, 64)
	if err != nil {
		c.JSON(errInvalidQuoteParams.HTTPStatus, errInvalidQuoteParams.ToHTTPError())
		return
	}

	var otherFees int64
	if raw := c.Query("other_fees_cents"); raw != "" {
		otherFees, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(errInvalidQuoteParams.HTTPStatus, errInvalidQuoteParams.ToHTTPError())
			return
		}
	}

	quote, err := h.usecase.Quote(c.Request.Context(), c.Param("company_id"), subtotal, otherFees)
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapCompanyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkspaceID),
		errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidCompanyName),
		errors.Is(err, usecase.ErrInvalidTaxOverride),
		errors.Is(err, usecase.ErrInvalidQuoteSubtotal),
		errors.Is(err, usecase.ErrInvalidQuoteOtherFees):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkspaceNotFound):
		return pkg.NewDomainErrorSimple("WORKSPACE_NOT_FOUND", "Workspace not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "Company not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
