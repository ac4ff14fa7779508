package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/disastercare/relief-hub/internal/container"
	handlers "github.com/disastercare/relief-hub/internal/interface/http"
	"github.com/disastercare/relief-hub/internal/interface/middleware"
	"github.com/disastercare/relief-hub/pkg/helpers"
)

// UserModule wires registration, login, user lookups, and the protected
// avatar upload.
// Public: POST /api/v1/register, POST /api/v1/login, GET /api/v1/users,
// GET /api/v1/users/:email
// Protected: POST /api/v1/users/avatar
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(root, v1 *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	v1.POST("/register", registerLimiter, m.Handler.Register)
	v1.POST("/login", loginLimiter, m.Handler.Login)
	v1.GET("/users", m.Handler.List)
	v1.GET("/users/:email", m.Handler.GetByEmail)

	auth := v1.Group("/users")
	auth.Use(middleware.JWTAuth(m.JWT))
	{
		auth.POST("/avatar", m.Handler.UploadAvatar)
	}
}
