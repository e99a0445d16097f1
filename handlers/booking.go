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

// BookingHandler serves the public booking form endpoints.
type BookingHandler struct {
	BookingSvc booking.Service
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// AvailabilityHandler handles GET /api/bookings/availability?date=YYYY-MM-DD.
func (h *BookingHandler) AvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	slots, err := h.BookingSvc.Availability(date)
	if errors.Is(err, booking.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.Logger.Error("availability lookup failed", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	b, err := h.BookingSvc.Create(req)
	if errors.Is(err, booking.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, bookingRepo.ErrSlotTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "that slot has just been taken, please pick another"})
		return
	}
	if err != nil {
		h.Logger.Error("booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"orderNumber": b.OrderNumber,
		"booking":     b.Public(),
		"message":     "booking received; check your email for the manage link",
	})
}
