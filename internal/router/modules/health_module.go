package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/disastercare/relief-hub/internal/interface/http"
)

// HealthModule wires the root liveness check.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(root, v1 *gin.RouterGroup) {
	root.GET("/", handlers.Health)
}
