package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bookingRepo "fobworks/database/repository/booking"
	"fobworks/handlers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newBookingRouter(svc *mockBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/api/bookings/availability", h.AvailabilityHandler)
	r.POST("/api/bookings", h.CreateBookingHandler)
	return r
}

const bookingJSON = `{
	"name": "Sam Carter",
	"email": "sam@example.com",
	"phone": "555-0101",
	"address": "12 Elm St",
	"serviceId": "svc-1",
	"date": "2026-10-01",
	"slot": "10:00"
}`

func TestAvailabilityHandler(t *testing.T) {
	svc := newMockBookingService()
	svc.slots = []string{"09:00", "15:00"}
	r := newBookingRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/availability?date=2026-10-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "15:00") {
		t.Fatalf("slots missing from response: %s", w.Body.String())
	}
}

func TestCreateBookingReturnsOrderNumber(t *testing.T) {
	svc := newMockBookingService()
	r := newBookingRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "orderNumber") {
		t.Fatalf("order number missing: %s", w.Body.String())
	}
}

func TestCreateBookingRejectsBadPayload(t *testing.T) {
	r := newBookingRouter(newMockBookingService())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"name":"Sam"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateBookingSlotConflictIs409(t *testing.T) {
	svc := newMockBookingService()
	svc.createErr = bookingRepo.ErrSlotTaken
	r := newBookingRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}
