package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"repairhub/internal/adapter/http/handlers/mocks"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.BookingDraft{})).DoAndReturn(
			func(_ context.Context, draft usecase.BookingDraft) (entities.Booking, error) {
				if draft.Device.Brand != "Acme" {
					t.Fatalf("unexpected device: %+v", draft.Device)
				}
				if draft.Customer.Email != "ana@example.com" {
					t.Fatalf("unexpected customer: %+v", draft.Customer)
				}
				return entities.Booking{ID: "bkg-1", Status: entities.BookingStatusPending}, nil
			},
		)

		body := `{"device":{"brand":"Acme","model":"X1"},"issue":{"description":"cracked screen"},"customer":{"firstName":"Ana","email":"ana@example.com"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestBookingHandler_UpdateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without a status returns the booking unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PUT("/v1/bookings/:id", h.UpdateBooking)

		uc.EXPECT().GetByID(gomock.Any(), "bkg-1").Return(entities.Booking{ID: "bkg-1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/bookings/bkg-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("sets the status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PUT("/v1/bookings/:id", h.UpdateBooking)

		uc.EXPECT().SetStatus(gomock.Any(), "bkg-1", entities.BookingStatusConfirmed).
			Return(entities.Booking{ID: "bkg-1", Status: entities.BookingStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/bookings/bkg-1", bytes.NewBufferString(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PUT("/v1/bookings/:id", h.UpdateBooking)

		uc.EXPECT().SetStatus(gomock.Any(), "bkg-1", entities.BookingStatus("bogus")).
			Return(entities.Booking{}, usecase.ErrInvalidBookingStatus)

		req := httptest.NewRequest(http.MethodPut, "/v1/bookings/bkg-1", bytes.NewBufferString(`{"status":"bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBookingHandler_ProposeQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:id/quote", h.ProposeQuote)

		uc.EXPECT().ProposeQuote(gomock.Any(), "bkg-1", 120.0, "screen replacement").
			Return(entities.Booking{ID: "bkg-1", QuoteStatus: entities.QuoteStatusProposed, QuoteAmount: 120}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bkg-1/quote", bytes.NewBufferString(`{"amount":120,"note":"screen replacement"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:id/quote", h.ProposeQuote)

		uc.EXPECT().ProposeQuote(gomock.Any(), "bkg-1", 0.0, "").
			Return(entities.Booking{}, usecase.ErrInvalidQuoteAmount)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bkg-1/quote", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBookingHandler_QuoteResolution(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:id/quote/accept", h.AcceptQuote)

		uc.EXPECT().AcceptQuote(gomock.Any(), "bkg-1", entities.Identity{Email: "ana@example.com"}).
			Return(entities.Booking{ID: "bkg-1", QuoteStatus: entities.QuoteStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bkg-1/quote/accept", bytes.NewBufferString(`{"email":"ana@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("decline identity mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:id/quote/decline", h.DeclineQuote)

		uc.EXPECT().DeclineQuote(gomock.Any(), "bkg-1", gomock.Any()).
			Return(entities.Booking{}, usecase.ErrQuoteForbidden)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bkg-1/quote/decline", bytes.NewBufferString(`{"email":"mallory@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("accept without an active quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:id/quote/accept", h.AcceptQuote)

		uc.EXPECT().AcceptQuote(gomock.Any(), "bkg-1", gomock.Any()).
			Return(entities.Booking{}, usecase.ErrNoActiveQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bkg-1/quote/accept", bytes.NewBufferString(`{"email":"ana@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapBookingError(t *testing.T) {
	if got := mapBookingError(usecase.ErrBookingNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBookingError(usecase.ErrInvalidQuoteAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBookingError(usecase.ErrNoActiveQuote); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBookingError(usecase.ErrQuoteForbidden); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapBookingError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
