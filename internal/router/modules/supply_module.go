package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/disastercare/relief-hub/internal/interface/http"
)

// SupplyModule wires the supply CRUD surface and the leaderboard.
// The two point-lookup spellings both exist in deployed clients, so both
// are registered.
type SupplyModule struct {
	Handler *handlers.SupplyHandler
}

func NewSupplyModule(h *handlers.SupplyHandler) *SupplyModule {
	return &SupplyModule{Handler: h}
}

func (m *SupplyModule) Register(root, v1 *gin.RouterGroup) {
	root.POST("/create-supply", m.Handler.Create)
	root.GET("/supplies", m.Handler.List)
	root.GET("/supplies/search", m.Handler.Search)
	root.GET("/supplies/:id", m.Handler.Get)
	root.GET("/supply/:id", m.Handler.Get)
	root.PATCH("/supply/:id", m.Handler.AppendPost)
	root.GET("/leaderboard", m.Handler.Leaderboard)
	root.DELETE("/delete-supply/:id", m.Handler.Delete)
}
