package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"fobworks/services/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookieName is the fixed name of the admin session cookie.
const SessionCookieName = "fw_admin_session"

const (
	adminPrefix      = "/admin"
	adminLoginPath   = "/admin/login"
	adminAssetPrefix = "/admin/assets/"
	// The emailed action links carry their own signed credential and are
	// verified by their handler, not by the gate.
	adminActionPath = "/admin/action"
)

// AdminSessionGate guards the admin page prefix. The login page and static
// assets pass unconditionally; every other /admin path needs a valid session
// cookie or gets redirected to the login page with the original path in the
// "next" parameter. Paths outside the prefix are never intercepted.
func AdminSessionGate(sessions *token.SessionSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !strings.HasPrefix(path, adminPrefix) {
			c.Next()
			return
		}
		if path == adminLoginPath || path == adminActionPath || strings.HasPrefix(path, adminAssetPrefix) {
			c.Next()
			return
		}

		cookie, _ := c.Cookie(SessionCookieName)
		if err := sessions.Verify(cookie); err != nil {
			zap.L().Debug("session gate denied", zap.String("path", path), zap.Error(err))
			c.Redirect(http.StatusFound, adminLoginPath+"?next="+url.QueryEscape(path))
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminSessionAuth protects the JSON admin API with the same session token,
// answering 401 instead of redirecting.
func AdminSessionAuth(sessions *token.SessionSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(SessionCookieName)
		if err := sessions.Verify(cookie); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication required"})
			return
		}
		c.Next()
	}
}
