package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/container"
	handlers "github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/interface/http"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/interface/middleware"
)

// AccountModule wires account and session creation into routes
// Public: POST /api/users, POST /api/users/sessions
type AccountModule struct {
	Handler *handlers.AccountHandler
}

func NewAccountModule(h *handlers.AccountHandler) *AccountModule {
	return &AccountModule{Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	var allow middleware.AllowFunc
	if cfg.RateLimitAllowPrivate {
		allow = middleware.AllowPrivateIP()
	}
	limiter := middleware.RateLimit(container.GetRedis(), cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByIPAndPath(), allow)

	rg.POST("/users", limiter, m.Handler.CreateUser)
	rg.POST("/users/sessions", limiter, m.Handler.CreateSession)
}
