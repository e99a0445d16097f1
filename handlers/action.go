package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	bookingRepo "fobworks/database/repository/booking"
	"fobworks/models"
	"fobworks/services/booking"
	"fobworks/services/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActionHandler serves the emailed one-click confirm/cancel links. The link
// carries its own credential (the action token), so no login is required.
type ActionHandler struct {
	Actions    *token.ActionSigner
	BookingSvc booking.Service
	Logger     *zap.Logger
}

func NewActionHandler(actions *token.ActionSigner, svc booking.Service, logger *zap.Logger) *ActionHandler {
	return &ActionHandler{Actions: actions, BookingSvc: svc, Logger: logger}
}

func htmlPage(c *gin.Context, status int, title, body string) {
	c.Data(status, "text/html; charset=utf-8", []byte(fmt.Sprintf(
		`<!doctype html><html><head><title>%s</title></head><body><h1>%s</h1><p>%s</p></body></html>`,
		title, title, body)))
}

// ActionLinkHandler handles GET /admin/action?order=..&action=..&token=..
func (h *ActionHandler) ActionLinkHandler(c *gin.Context) {
	order := strings.ToUpper(strings.TrimSpace(c.Query("order")))
	action := c.Query("action")
	tok := c.Query("token")

	claims, err := h.Actions.Verify(tok)
	if err != nil {
		// The log keeps the precise reason; the page shows the same
		// generic denial for every verification failure.
		h.Logger.Warn("action link rejected",
			zap.String("order", order), zap.String("action", action), zap.Error(err))
		htmlPage(c, http.StatusForbidden, "Link not valid",
			"This link is invalid or has expired. Please use the admin dashboard instead.")
		return
	}
	if claims.OrderNumber != order || claims.Action != action {
		h.Logger.Warn("action link does not match request",
			zap.String("order", order), zap.String("action", action),
			zap.String("tokenOrder", claims.OrderNumber), zap.String("tokenAction", claims.Action))
		htmlPage(c, http.StatusForbidden, "Link not valid",
			"This link does not match the requested booking or action.")
		return
	}

	status := models.StatusConfirmed
	if claims.Action == token.ActionCancel {
		status = models.StatusCancelled
	}

	b, changed, err := h.BookingSvc.SetStatus(order, status)
	if err == bookingRepo.ErrNotFound {
		htmlPage(c, http.StatusNotFound, "Booking not found",
			fmt.Sprintf("No booking with order number %s exists.", order))
		return
	}
	if errors.Is(err, booking.ErrInvalidStatus) {
		htmlPage(c, http.StatusConflict, "Booking cancelled",
			fmt.Sprintf("Booking %s was cancelled and can no longer be confirmed.", order))
		return
	}
	if err != nil {
		h.Logger.Error("action link transition failed",
			zap.String("order", order), zap.Error(err))
		htmlPage(c, http.StatusInternalServerError, "Something went wrong",
			"The booking could not be updated. Please try again or use the dashboard.")
		return
	}

	if !changed {
		htmlPage(c, http.StatusOK, "Already updated",
			fmt.Sprintf("Booking %s is already %s.", b.OrderNumber, b.Status))
		return
	}
	htmlPage(c, http.StatusOK, "Booking updated",
		fmt.Sprintf("Booking %s is now %s. The customer has been emailed.", b.OrderNumber, b.Status))
}
