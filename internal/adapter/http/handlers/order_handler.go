package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	request "repairhub/internal/adapter/http/dto/request"
	response "repairhub/internal/adapter/http/dto/response"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase"
	"repairhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the order lifecycle.
//
// Create is public (customer checkout); every other mutation sits behind
// the staff-token middleware wired in the routes package.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	ident := entities.NewIdentity(c.Query("email"), c.Query("phone"))
	orders, err := h.usecase.List(c.Request.Context(), ident)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	items, total, customer, notes := payload.ToDraft()
	o, err := h.usecase.Create(c.Request.Context(), usecase.OrderDraft{
		Items:    items,
		Total:    total,
		Customer: customer,
		Notes:    notes,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	patch := usecase.OrderPatch{Notes: payload.Notes}
	if payload.Status != nil {
		status := entities.OrderStatus(*payload.Status)
		patch.Status = &status
	}

	o, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	h.forceStatus(c, h.usecase.Cancel)
}

func (h *OrderHandler) RefundOrder(c *gin.Context) {
	h.forceStatus(c, h.usecase.Refund)
}

func (h *OrderHandler) forceStatus(
	c *gin.Context,
	apply func(ctx context.Context, id, note string) (entities.Order, error),
) {
	note, ok := bindOptionalNote(c)
	if !ok {
		return
	}
	o, err := apply(c.Request.Context(), c.Param("id"), note)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Invalid order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderTerminal):
		return pkg.NewDomainErrorSimple("ORDER_TERMINAL", "Order already in a terminal status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderStatusConflict):
		return pkg.NewDomainErrorSimple("ORDER_STATUS_CONFLICT", "Order status changed concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingIdentity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "email or phone required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// bindOptionalNote tolerates an absent body: cancel/refund notes are
// optional.
func bindOptionalNote(c *gin.Context) (string, bool) {
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return "", false
	}
	return payload.Note, true
}
