package handlers

import (
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
	errInvalidVoucherPayload = pkg.NewDomainErrorSimple("INVALID_VOUCHER_INPUT", "Invalid voucher payload", http.StatusBadRequest)
)

// VoucherHandler handles HTTP requests for the voucher ledger.

type VoucherHandler struct {
	usecase usecase.IVoucherUseCase
}

func NewVoucherHandler(uc usecase.IVoucherUseCase) *VoucherHandler {
	return &VoucherHandler{usecase: uc}
}

func (h *VoucherHandler) ListVouchers(c *gin.Context) {
	vouchers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapVoucherError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVouchers(vouchers))
}

func (h *VoucherHandler) CreateVoucher(c *gin.Context) {
	var payload request.CreateVoucherRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVoucherPayload.HTTPStatus, errInvalidVoucherPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.Create(c.Request.Context(), payload.Code, payload.Amount)
	if err != nil {
		appErr := mapVoucherError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromVoucher(v))
}

func (h *VoucherHandler) AssignVoucher(c *gin.Context) {
	var payload request.AssignVoucherRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVoucherPayload.HTTPStatus, errInvalidVoucherPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.Assign(c.Request.Context(), payload.Code, entities.NewIdentity(payload.Email, payload.Phone))
	if err != nil {
		appErr := mapVoucherError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVoucher(v))
}

func (h *VoucherHandler) RedeemVoucher(c *gin.Context) {
	var payload request.RedeemVoucherRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVoucherPayload.HTTPStatus, errInvalidVoucherPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.Redeem(c.Request.Context(), payload.Code, entities.NewIdentity(payload.Email, payload.Phone))
	if err != nil {
		appErr := mapVoucherError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVoucher(v))
}

func (h *VoucherHandler) ListByCustomer(c *gin.Context) {
	vouchers, err := h.usecase.ListByCustomer(c.Request.Context(), entities.NewIdentity(c.Query("email"), c.Query("phone")))
	if err != nil {
		appErr := mapVoucherError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVouchers(vouchers))
}

func (h *VoucherHandler) DeleteVoucher(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("code")); err != nil {
		appErr := mapVoucherError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mapVoucherError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrVoucherNotFound):
		return pkg.NewDomainErrorSimple("VOUCHER_NOT_FOUND", "Voucher not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVoucherExists):
		return pkg.NewDomainErrorSimple("VOUCHER_EXISTS", "Voucher exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidVoucherCode), errors.Is(err, usecase.ErrInvalidVoucherAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "code and amount are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingIdentity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "email or phone required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVoucherForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Voucher assigned to a different customer", http.StatusForbidden)
	case errors.Is(err, usecase.ErrVoucherUsed):
		return pkg.NewDomainErrorSimple("VOUCHER_USED", "Voucher already used", http.StatusGone)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
