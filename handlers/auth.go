package handlers

import (
	"crypto/subtle"
	"net/http"

	"fobworks/config"
	"fobworks/middleware"
	"fobworks/services/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler implements admin login and logout.
type AuthHandler struct {
	Sessions *token.SessionSigner
	AdminKey string
}

func NewAuthHandler(sessions *token.SessionSigner, adminKey string) *AuthHandler {
	return &AuthHandler{Sessions: sessions, AdminKey: adminKey}
}

// LoginHandler handles POST /api/admin/login. The submitted key is compared
// against the configured admin key in constant time; on success a session
// cookie worth 8 hours is set.
func (ah *AuthHandler) LoginHandler(c *gin.Context) {
	var body struct {
		Key string `json:"key"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	if ah.AdminKey == "" {
		zap.L().Error("admin login attempted but ADMIN_KEY is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "server misconfigured"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(body.Key), []byte(ah.AdminKey)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid key"})
		return
	}

	tok := ah.Sessions.Create(token.SessionTTL)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, tok,
		int(token.SessionTTL.Seconds()), "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// LogoutHandler clears the session cookie. There is no server-side session
// state to revoke; expiry does the rest.
func (ah *AuthHandler) LogoutHandler(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
