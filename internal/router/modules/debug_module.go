package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/disastercare/relief-hub/internal/container"
	"github.com/disastercare/relief-hub/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(root, v1 *gin.RouterGroup) {
	// Public metrics endpoint (expvar), rate-limited per IP
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	root.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
