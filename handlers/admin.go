package handlers

import (
	"errors"
	"net/http"

	bookingRepo "fobworks/database/repository/booking"
	"fobworks/models"
	"fobworks/services/booking"
	"fobworks/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the dashboard's booking operations. All routes
// using it sit behind the admin session middleware.
type AdminHandler struct {
	BookingSvc booking.Service
	Notifier   notification.Service
	Logger     *zap.Logger
}

func NewAdminHandler(svc booking.Service, notifier notification.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{BookingSvc: svc, Notifier: notifier, Logger: logger}
}

// ListBookingsHandler handles GET /api/admin/bookings?status=..&date=..
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	filter := bookingRepo.ListFilter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}
	bookings, err := ah.BookingSvc.List(filter)
	if err != nil {
		ah.Logger.Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/admin/bookings/:order.
func (ah *AdminHandler) GetBookingHandler(c *gin.Context) {
	b, err := ah.BookingSvc.Get(c.Param("order"))
	if errors.Is(err, bookingRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if err != nil {
		ah.Logger.Error("Failed to fetch booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (ah *AdminHandler) setStatus(c *gin.Context, status string) {
	order := c.Param("order")
	b, changed, err := ah.BookingSvc.SetStatus(order, status)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if errors.Is(err, booking.ErrInvalidStatus) {
		c.JSON(http.StatusConflict, gin.H{"error": "cancelled bookings cannot be confirmed"})
		return
	}
	if err != nil {
		ah.Logger.Error("Failed to update booking status",
			zap.String("order", order), zap.String("status", status), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "changed": changed})
}

// ConfirmBookingHandler handles POST /api/admin/bookings/:order/confirm.
func (ah *AdminHandler) ConfirmBookingHandler(c *gin.Context) {
	ah.setStatus(c, models.StatusConfirmed)
}

// CancelBookingHandler handles POST /api/admin/bookings/:order/cancel.
func (ah *AdminHandler) CancelBookingHandler(c *gin.Context) {
	ah.setStatus(c, models.StatusCancelled)
}

// ResendActionLinksHandler handles POST /api/admin/bookings/:order/resend.
// It re-sends the admin alert email with freshly minted action links.
func (ah *AdminHandler) ResendActionLinksHandler(c *gin.Context) {
	b, err := ah.BookingSvc.Get(c.Param("order"))
	if errors.Is(err, bookingRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if err != nil {
		ah.Logger.Error("Failed to fetch booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}
	if err := ah.Notifier.AdminNewBooking(b); err != nil {
		ah.Logger.Error("Failed to resend action links", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "email delivery failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
