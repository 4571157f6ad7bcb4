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
	errInvalidWorkspacePayload  = pkg.NewDomainErrorSimple("INVALID_WORKSPACE_INPUT", "Invalid workspace payload", http.StatusBadRequest)
	errInvalidInvitationPayload = pkg.NewDomainErrorSimple("INVALID_INVITATION_INPUT", "Invalid invitation payload", http.StatusBadRequest)
)

// WorkspaceHandler handles HTTP requests for workspaces, their members and
// invitations, and the workspace activity feed.

type WorkspaceHandler struct {
	usecase usecase.IWorkspaceUseCase
}

func NewWorkspaceHandler(uc usecase.IWorkspaceUseCase) *WorkspaceHandler {
	return &WorkspaceHandler{usecase: uc}
}

func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	var payload request.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkspacePayload.HTTPStatus, errInvalidWorkspacePayload.ToHTTPError())
		return
	}

	workspace, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapWorkspaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkspace(workspace))
}

func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	workspace, err := h.usecase.GetByID(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapWorkspaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkspace(workspace))
}

func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
	var payload request.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkspacePayload.HTTPStatus, errInvalidWorkspacePayload.ToHTTPError())
		return
	}

	workspace, err := h.usecase.Update(c.Request.Context(), c.Param("workspace_id"), payload.ToUpdate())
	if err != nil {
		appErr := mapWorkspaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkspace(workspace))
}

func (h *WorkspaceHandler) DaysUntilMove(c *gin.Context) {
	days, err := h.usecase.DaysUntilMove(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapWorkspaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	workspace, err := h.usecase.GetByID(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapWorkspaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DaysUntilMoveResponse{Days: days, Set: workspace.MoveInDate != nil})
}

func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	members, err := h.usecase.ListMembers(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapWorkspaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMembers(members))
}

func (h *WorkspaceHandler) RemoveMember(c *gin.Context) {
	if err := h.usecase.RemoveMember(c.Request.Context(), c.Param("member_id")); err != nil {
		appErr := mapWorkspaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) Invite(c *gin.Context) {
	var payload request.InviteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvitationPayload.HTTPStatus, errInvalidInvitationPayload.ToHTTPError())
		return
	}

	invitation, err := h.usecase.Invite(c.Request.Context(), c.Param("workspace_id"), payload.Email)
	if err != nil {
		appErr := mapWorkspaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvitation(invitation))
}

func (h *WorkspaceHandler) ListPendingInvitations(c *gin.Context) {
	invitations, err := h.usecase.ListPendingInvitations(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapWorkspaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvitations(invitations))
}

func (h *WorkspaceHandler) CancelInvitation(c *gin.Context) {
	if err := h.usecase.CancelInvitation(c.Request.Context(), c.Param("invitation_id")); err != nil {
		appErr := mapWorkspaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) Activity(c *gin.Context) {
	entries, err := h.usecase.Activity(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapWorkspaceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActivityEntries(entries))
}

func mapWorkspaceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkspaceID),
		errors.Is(err, usecase.ErrInvalidWorkspaceName),
		errors.Is(err, usecase.ErrInvalidCurrency),
		errors.Is(err, usecase.ErrInvalidSalesTaxRate),
		errors.Is(err, usecase.ErrInvalidMemberID),
		errors.Is(err, usecase.ErrInvalidInvitationID),
		errors.Is(err, usecase.ErrInvalidInvitationEmail),
		errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCannotRemoveCreator):
		return pkg.NewDomainErrorSimple("CANNOT_REMOVE_CREATOR", "Workspace creator cannot be removed", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateInvitation):
		return pkg.NewDomainErrorSimple("DUPLICATE_INVITATION", "A pending invitation for this email already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkspaceNotFound):
		return pkg.NewDomainErrorSimple("WORKSPACE_NOT_FOUND", "Workspace not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMemberNotFound):
		return pkg.NewDomainErrorSimple("MEMBER_NOT_FOUND", "Member not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvitationNotFound):
		return pkg.NewDomainErrorSimple("INVITATION_NOT_FOUND", "Invitation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
