package handlers

import (
	"errors"
	"net/http"

	bookingRepo "fobworks/database/repository/booking"
	"fobworks/models"
	"fobworks/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ManageHandler serves the customer self-service ("manage my booking") flow.
// Requests authenticate with the order number plus the manage code from the
// confirmation email.
type ManageHandler struct {
	BookingSvc booking.Service
	Logger     *zap.Logger
}

func NewManageHandler(svc booking.Service, logger *zap.Logger) *ManageHandler {
	return &ManageHandler{BookingSvc: svc, Logger: logger}
}

func manageCreds(c *gin.Context) (order, code string) {
	return c.Query("order"), c.Query("code")
}

// GetBookingHandler handles GET /api/bookings/manage?order=..&code=..
func (h *ManageHandler) GetBookingHandler(c *gin.Context) {
	order, code := manageCreds(c)
	b, err := h.BookingSvc.GetForCustomer(order, code)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "order number and code do not match"})
		return
	}
	c.JSON(http.StatusOK, b.Public())
}

// CancelBookingHandler handles POST /api/bookings/manage/cancel?order=..&code=..
func (h *ManageHandler) CancelBookingHandler(c *gin.Context) {
	order, code := manageCreds(c)
	b, err := h.BookingSvc.CancelForCustomer(order, code)
	if errors.Is(err, booking.ErrAccessDenied) {
		c.JSON(http.StatusForbidden, gin.H{"error": "order number and code do not match"})
		return
	}
	if err != nil {
		h.Logger.Error("customer cancellation failed", zap.String("order", order), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, b.Public())
}

// RescheduleBookingHandler handles POST /api/bookings/manage/reschedule?order=..&code=..
func (h *ManageHandler) RescheduleBookingHandler(c *gin.Context) {
	order, code := manageCreds(c)

	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	b, err := h.BookingSvc.Reschedule(order, code, req)
	switch {
	case errors.Is(err, booking.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "order number and code do not match"})
	case errors.Is(err, booking.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, bookingRepo.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "that slot has just been taken, please pick another"})
	case err != nil:
		h.Logger.Error("customer reschedule failed", zap.String("order", order), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reschedule booking"})
	default:
		c.JSON(http.StatusOK, b.Public())
	}
}
