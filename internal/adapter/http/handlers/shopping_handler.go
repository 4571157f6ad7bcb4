package handlers

import (
	"errors"
	request "moveplanner/internal/adapter/http/dto/request"
	response "moveplanner/internal/adapter/http/dto/response"
	"moveplanner/internal/domain/entities"
	"moveplanner/internal/usecase"
	"moveplanner/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidItemPayload     = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid item payload", http.StatusBadRequest)
	errInvalidCategoryPayload = pkg.NewDomainErrorSimple("INVALID_CATEGORY_INPUT", "Invalid category payload", http.StatusBadRequest)
	errInvalidRoomPayload     = pkg.NewDomainErrorSimple("INVALID_ROOM_INPUT", "Invalid room payload", http.StatusBadRequest)
)

// ShoppingHandler handles HTTP requests for shopping items, their price
// history and the category/room tags they are grouped by.

type ShoppingHandler struct {
	usecase usecase.IShoppingUseCase
}

func NewShoppingHandler(uc usecase.IShoppingUseCase) *ShoppingHandler {
	return &ShoppingHandler{usecase: uc}
}

func (h *ShoppingHandler) CreateItem(c *gin.Context) {
	var payload request.CreateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.CreateItem(c.Request.Context(), c.Param("workspace_id"), payload.ToInput())
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromItem(item))
}

func (h *ShoppingHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetItem(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(item))
}

func (h *ShoppingHandler) ListItems(c *gin.Context) {
	filter := usecase.ItemFilter{
		RoomID:     c.Query("room_id"),
		CategoryID: c.Query("category_id"),
		CompanyID:  c.Query("company_id"),
	}
	switch c.Query("purchased") {
	case "true":
		v := true
		filter.Purchased = &v
	case "false":
		v := false
		filter.Purchased = &v
	}

	items, err := h.usecase.ListItems(c.Request.Context(), c.Param("workspace_id"), filter)
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItems(items))
}

func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("item_id"), payload.ToUpdate())
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(entities.ItemWithPrices{Item: item}))
}

func (h *ShoppingHandler) Purchase(c *gin.Context) {
	var payload request.PurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.SetPurchased(c.Request.Context(), c.Param("item_id"), payload.Purchased, payload.ActualUnitCents)
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItem(item))
}

func (h *ShoppingHandler) ListPrices(c *gin.Context) {
	item, err := h.usecase.GetItem(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItemPrices(item.Prices))
}

func (h *ShoppingHandler) AddPrice(c *gin.Context) {
	var payload request.PriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	price, err := h.usecase.AddPrice(c.Request.Context(), c.Param("item_id"), payload.EstUnitCents)
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromItemPrice(price))
}

func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	if err := h.usecase.DeleteItem(c.Request.Context(), c.Param("item_id")); err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ShoppingHandler) CreateCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCategoryPayload.HTTPStatus, errInvalidCategoryPayload.ToHTTPError())
		return
	}

	category, err := h.usecase.CreateCategory(c.Request.Context(), c.Param("workspace_id"), payload.Name, payload.Color)
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCategory(category))
}

func (h *ShoppingHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.ListCategories(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategories(categories))
}

func (h *ShoppingHandler) UpdateCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCategoryPayload.HTTPStatus, errInvalidCategoryPayload.ToHTTPError())
		return
	}

	category, err := h.usecase.UpdateCategory(c.Request.Context(), c.Param("category_id"), payload.Name, payload.Color)
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategory(category))
}

func (h *ShoppingHandler) DeleteCategory(c *gin.Context) {
	if err := h.usecase.DeleteCategory(c.Request.Context(), c.Param("category_id")); err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ShoppingHandler) CreateRoom(c *gin.Context) {
	var payload request.RoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoomPayload.HTTPStatus, errInvalidRoomPayload.ToHTTPError())
		return
	}

	room, err := h.usecase.CreateRoom(c.Request.Context(), c.Param("workspace_id"), payload.Name)
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRoom(room))
}

func (h *ShoppingHandler) ListRooms(c *gin.Context) {
	rooms, err := h.usecase.ListRooms(c.Request.Context(), c.Param("workspace_id"))
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRooms(rooms))
}

func (h *ShoppingHandler) UpdateRoom(c *gin.Context) {
	var payload request.RoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRoomPayload.HTTPStatus, errInvalidRoomPayload.ToHTTPError())
		return
	}

	room, err := h.usecase.UpdateRoom(c.Request.Context(), c.Param("room_id"), payload.Name)
	if err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoom(room))
}

func (h *ShoppingHandler) DeleteRoom(c *gin.Context) {
	if err := h.usecase.DeleteRoom(c.Request.Context(), c.Param("room_id")); err != nil {
		appErr := mapShoppingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapShoppingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkspaceID),
		errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrInvalidUnitPrice),
		errors.Is(err, usecase.ErrInvalidCategoryID),
		errors.Is(err, usecase.ErrInvalidCategoryName),
		errors.Is(err, usecase.ErrInvalidRoomID),
		errors.Is(err, usecase.ErrInvalidRoomName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkspaceNotFound):
		return pkg.NewDomainErrorSimple("WORKSPACE_NOT_FOUND", "Workspace not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRoomNotFound):
		return pkg.NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
