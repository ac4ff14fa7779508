package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// Proxy headers consulted in order. CF-Connecting-IP wins when the app sits
// behind Cloudflare; X-Forwarded-For uses the left-most hop.
var proxyIPHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For"}

// RealIP resolves the client address through known proxy headers and stores
// it under "real_ip". Rate limiting keys off this value.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", resolveClientIP(c))
		c.Next()
	}
}

func resolveClientIP(c *gin.Context) string {
	for _, h := range proxyIPHeaders {
		raw := c.GetHeader(h)
		if raw == "" {
			continue
		}
		first, _, _ := strings.Cut(raw, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	return c.ClientIP()
}
