package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/disastercare/relief-hub/internal/container"
	handlers "github.com/disastercare/relief-hub/internal/interface/http"
	"github.com/disastercare/relief-hub/internal/interface/middleware"
)

// VolunteerModule wires volunteer sign-up.
type VolunteerModule struct {
	Handler *handlers.VolunteerHandler
}

func NewVolunteerModule(h *handlers.VolunteerHandler) *VolunteerModule {
	return &VolunteerModule{Handler: h}
}

func (m *VolunteerModule) Register(root, v1 *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil)
	root.POST("/create-volunteer", limiter, m.Handler.Create)
}
