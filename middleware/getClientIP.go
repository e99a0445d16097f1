package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP resolves the caller's address for rate limiting. Proxy headers
// win over the socket address so limits land on the actual client rather
// than the load balancer in front of it.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// First entry is the originating client; the rest are proxies.
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
