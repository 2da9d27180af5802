package handlers

import (
	"context"
	"errors"
	"net/http"

	request "repairhub/internal/adapter/http/dto/request"
	response "repairhub/internal/adapter/http/dto/response"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase"
	"repairhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
)

// BookingHandler handles HTTP requests for repair bookings and the quote
// negotiation protocol.
//
// Quote proposal is staff-only; accept/decline are customer actions
// authorized by identity match instead of the staff token.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	ident := entities.NewIdentity(c.Query("email"), c.Query("phone"))
	bookings, err := h.usecase.List(c.Request.Context(), ident)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), usecase.BookingDraft{
		Device:         payload.ToDevice(),
		Issue:          payload.ToIssue(),
		ServiceOptions: payload.ToOptions(),
		Customer:       payload.Customer.ToEntity(),
	})
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBooking(b))
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var payload request.UpdateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	if payload.Status == nil {
		b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			appErr := mapBookingError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromBooking(b))
		return
	}

	b, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), entities.BookingStatus(*payload.Status))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *BookingHandler) ProposeQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.ProposeQuote(c.Request.Context(), c.Param("id"), payload.ResolveAmount(), payload.Note)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *BookingHandler) AcceptQuote(c *gin.Context) {
	h.resolveQuote(c, h.usecase.AcceptQuote)
}

func (h *BookingHandler) DeclineQuote(c *gin.Context) {
	h.resolveQuote(c, h.usecase.DeclineQuote)
}

func (h *BookingHandler) resolveQuote(
	c *gin.Context,
	apply func(ctx context.Context, id string, ident entities.Identity) (entities.Booking, error),
) {
	var payload request.IdentityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	b, err := apply(c.Request.Context(), c.Param("id"), payload.Identity())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidBookingID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBookingStatus):
		return pkg.NewDomainErrorSimple("INVALID_BOOKING_STATUS", "Invalid booking status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteAmount):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_AMOUNT", "Valid amount required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoActiveQuote):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_QUOTE", "No active quote", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Forbidden", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
