package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fobworks/middleware"
	"fobworks/services/token"

	"github.com/gin-gonic/gin"
)

func newGatedRouter(sessions *token.SessionSigner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AdminSessionGate(sessions))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/", ok)
	r.GET("/admin/login", ok)
	r.GET("/admin/action", ok)
	r.GET("/admin/dashboard", ok)
	return r
}

func doGet(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGateIgnoresNonAdminPaths(t *testing.T) {
	r := newGatedRouter(token.NewSessionSigner("s3cret"))
	if w := doGet(r, "/", ""); w.Code != http.StatusOK {
		t.Fatalf("public path intercepted: %d", w.Code)
	}
}

func TestGateAllowsLoginAndActionWithoutSession(t *testing.T) {
	r := newGatedRouter(token.NewSessionSigner("s3cret"))
	for _, path := range []string{"/admin/login", "/admin/action"} {
		if w := doGet(r, path, ""); w.Code != http.StatusOK {
			t.Errorf("%s blocked without session: %d", path, w.Code)
		}
	}
}

func TestGateRedirectsWithNextParam(t *testing.T) {
	r := newGatedRouter(token.NewSessionSigner("s3cret"))
	w := doGet(r, "/admin/dashboard", "")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	loc := w.Header().Get("Location")
	want := "/admin/login?next=%2Fadmin%2Fdashboard"
	if loc != want {
		t.Fatalf("redirect location = %q, want %q", loc, want)
	}
}

func TestGateAcceptsValidSession(t *testing.T) {
	sessions := token.NewSessionSigner("s3cret")
	r := newGatedRouter(sessions)
	if w := doGet(r, "/admin/dashboard", sessions.Create(token.SessionTTL)); w.Code != http.StatusOK {
		t.Fatalf("valid session rejected: %d", w.Code)
	}
}

func TestGateRejectsForgedAndForeignSessions(t *testing.T) {
	sessions := token.NewSessionSigner("s3cret")
	r := newGatedRouter(sessions)

	if w := doGet(r, "/admin/dashboard", "admin.9999999999.deadbeef"); w.Code != http.StatusFound {
		t.Errorf("forged cookie passed the gate: %d", w.Code)
	}
	foreign := token.NewSessionSigner("other-secret").Create(time.Hour)
	if w := doGet(r, "/admin/dashboard", foreign); w.Code != http.StatusFound {
		t.Errorf("cookie signed with wrong secret passed the gate: %d", w.Code)
	}
}

func TestAdminSessionAuthReturns401(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := token.NewSessionSigner("s3cret")
	r := gin.New()
	api := r.Group("/api/admin")
	api.Use(middleware.AdminSessionAuth(sessions))
	api.GET("/bookings", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	if w := doGet(r, "/api/admin/bookings", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}
	if w := doGet(r, "/api/admin/bookings", sessions.Create(time.Hour)); w.Code != http.StatusOK {
		t.Fatalf("expected 200 with session, got %d", w.Code)
	}
}
