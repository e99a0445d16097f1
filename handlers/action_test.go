package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fobworks/handlers"
	"fobworks/models"
	"fobworks/services/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newActionRouter(svc *mockBookingService) (*gin.Engine, *token.ActionSigner) {
	gin.SetMode(gin.TestMode)
	actions := token.NewActionSigner("action-secret")
	h := handlers.NewActionHandler(actions, svc, zap.NewNop())

	r := gin.New()
	r.GET("/admin/action", h.ActionLinkHandler)
	return r, actions
}

func actionGet(r *gin.Engine, order, action, tok string) *httptest.ResponseRecorder {
	q := url.Values{"order": {order}, "action": {action}, "token": {tok}}
	req := httptest.NewRequest(http.MethodGet, "/admin/action?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func pendingBooking(order string) *models.Booking {
	return &models.Booking{
		OrderNumber: order,
		Name:        "Sam",
		Email:       "sam@example.com",
		Date:        "2026-10-01",
		Slot:        "10:00",
		Status:      models.StatusPending,
	}
}

func TestActionLinkConfirmsBooking(t *testing.T) {
	svc := newMockBookingService(pendingBooking("FW-AB12C"))
	r, actions := newActionRouter(svc)

	tok, _ := actions.Create("FW-AB12C", token.ActionConfirm, time.Hour)
	w := actionGet(r, "FW-AB12C", "confirm", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.bookings["FW-AB12C"].Status != models.StatusConfirmed {
		t.Fatalf("booking not confirmed: %s", svc.bookings["FW-AB12C"].Status)
	}
}

func TestActionLinkLowercaseOrderIsNormalized(t *testing.T) {
	svc := newMockBookingService(pendingBooking("FW-AB12C"))
	r, actions := newActionRouter(svc)

	tok, _ := actions.Create("FW-AB12C", token.ActionCancel, time.Hour)
	w := actionGet(r, "fw-ab12c", "cancel", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.bookings["FW-AB12C"].Status != models.StatusCancelled {
		t.Fatalf("booking not cancelled: %s", svc.bookings["FW-AB12C"].Status)
	}
}

func TestActionLinkRejectsMismatchedAction(t *testing.T) {
	svc := newMockBookingService(pendingBooking("FW-AB12C"))
	r, actions := newActionRouter(svc)

	// Token authorizes confirm; the request asks for cancel.
	tok, _ := actions.Create("FW-AB12C", token.ActionConfirm, time.Hour)
	w := actionGet(r, "FW-AB12C", "cancel", tok)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for action mismatch, got %d", w.Code)
	}
	if got := svc.bookings["FW-AB12C"].Status; got != models.StatusPending {
		t.Fatalf("booking mutated despite mismatch: %s", got)
	}
}

func TestActionLinkRejectsMismatchedOrder(t *testing.T) {
	svc := newMockBookingService(pendingBooking("FW-AB12C"), pendingBooking("FW-ZZ99Z"))
	r, actions := newActionRouter(svc)

	tok, _ := actions.Create("FW-AB12C", token.ActionConfirm, time.Hour)
	w := actionGet(r, "FW-ZZ99Z", "confirm", tok)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for order mismatch, got %d", w.Code)
	}
}

func TestActionLinkRejectsTamperedToken(t *testing.T) {
	svc := newMockBookingService(pendingBooking("FW-AB12C"))
	r, actions := newActionRouter(svc)

	tok, _ := actions.Create("FW-AB12C", token.ActionConfirm, time.Hour)
	tampered := tok[:len(tok)-1]
	if strings.HasSuffix(tok, "a") {
		tampered += "b"
	} else {
		tampered += "a"
	}
	w := actionGet(r, "FW-AB12C", "confirm", tampered)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for tampered token, got %d", w.Code)
	}
}

func TestActionLinkRejectsExpiredToken(t *testing.T) {
	svc := newMockBookingService(pendingBooking("FW-AB12C"))
	r, actions := newActionRouter(svc)

	tok, _ := actions.Create("FW-AB12C", token.ActionConfirm, -time.Hour)
	w := actionGet(r, "FW-AB12C", "confirm", tok)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for expired token, got %d", w.Code)
	}
}

func TestActionLinkUnknownOrderIs404(t *testing.T) {
	svc := newMockBookingService()
	r, actions := newActionRouter(svc)

	tok, _ := actions.Create("FW-GONE1", token.ActionConfirm, time.Hour)
	w := actionGet(r, "FW-GONE1", "confirm", tok)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestActionLinkWontResurrectCancelledBooking(t *testing.T) {
	b := pendingBooking("FW-AB12C")
	b.Status = models.StatusCancelled
	svc := newMockBookingService(b)
	r, actions := newActionRouter(svc)

	tok, _ := actions.Create("FW-AB12C", token.ActionConfirm, time.Hour)
	w := actionGet(r, "FW-AB12C", "confirm", tok)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for confirm of cancelled booking, got %d", w.Code)
	}
	if svc.bookings["FW-AB12C"].Status != models.StatusCancelled {
		t.Fatalf("cancelled booking mutated: %s", svc.bookings["FW-AB12C"].Status)
	}
}

func TestActionLinkIsIdempotent(t *testing.T) {
	b := pendingBooking("FW-AB12C")
	b.Status = models.StatusConfirmed
	svc := newMockBookingService(b)
	r, actions := newActionRouter(svc)

	tok, _ := actions.Create("FW-AB12C", token.ActionConfirm, time.Hour)
	w := actionGet(r, "FW-AB12C", "confirm", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for repeat click, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already") {
		t.Fatalf("expected already-updated page, got: %s", w.Body.String())
	}
}
