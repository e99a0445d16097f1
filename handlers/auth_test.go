package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fobworks/handlers"
	"fobworks/middleware"
	"fobworks/services/token"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(adminKey string) (*gin.Engine, *token.SessionSigner) {
	gin.SetMode(gin.TestMode)
	sessions := token.NewSessionSigner("session-secret")
	ah := handlers.NewAuthHandler(sessions, adminKey)

	r := gin.New()
	r.Use(middleware.AdminSessionGate(sessions))
	r.POST("/api/admin/login", ah.LoginHandler)
	r.POST("/api/admin/logout", ah.LogoutHandler)
	r.GET("/admin/dashboard", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r, sessions
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestLoginRejectsWrongKey(t *testing.T) {
	r, _ := newAuthRouter("hunter2")
	w := postJSON(r, "/api/admin/login", `{"key":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if strings.Contains(w.Header().Get("Set-Cookie"), middleware.SessionCookieName) {
		t.Fatal("failed login must not set a session cookie")
	}
}

func TestLoginFailsWhenKeyUnconfigured(t *testing.T) {
	r, _ := newAuthRouter("")
	w := postJSON(r, "/api/admin/login", `{"key":""}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unconfigured admin key, got %d", w.Code)
	}
}

func TestLoginCookieSatisfiesGate(t *testing.T) {
	r, _ := newAuthRouter("hunter2")
	w := postJSON(r, "/api/admin/login", `{"key":"hunter2"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	cookie := sessionCookie(t, w)
	if !cookie.HttpOnly {
		t.Error("session cookie must be http-only")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("fresh login cookie rejected by gate: %d", w2.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := newAuthRouter("hunter2")
	w := postJSON(r, "/api/admin/logout", "")
	cookie := sessionCookie(t, w)
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("logout cookie not cleared: value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}

	// The cleared value must no longer pass the gate.
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: cookie.Value})
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusFound {
		t.Fatalf("cleared cookie still passes the gate: %d", w2.Code)
	}
}
