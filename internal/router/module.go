package router

import "github.com/gin-gonic/gin"

// Module describes a feature module that can register its routes.
// root is the engine-level group (legacy top-level paths live there),
// v1 is the /api/v1 group.
type Module interface {
	Register(root, v1 *gin.RouterGroup)
}
