package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/application"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/container"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/infrastructure/memory"
	handlers "github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/interface/http"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/interface/middleware"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/router/modules"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/pkg/validation"
)

type AccountModuleDeps struct {
	Service *application.AccountService
	Handler *handlers.AccountHandler
}

func buildAccountDeps() AccountModuleDeps {
	repo := container.GetUserRepo()
	if repo == nil {
		repo = memory.NewUserRepository()
		container.SetUserRepo(repo)
	}

	service := application.NewAccountService(repo, container.GetJWT(), container.GetLogger())
	handler := handlers.NewAccountHandler(service, container.GetLogger())

	return AccountModuleDeps{Service: service, Handler: handler}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildAccountDeps()
	r.Add(modules.NewAccountModule(deps.Handler))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

// NewEngine builds the gin engine of the reference session API from the
// container singletons.
func NewEngine() *gin.Engine {
	cfg := container.GetConfig()
	validation.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  origins,
			AllowMethods:  []string{"POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := NewRegistry(r)
	InitModules(reg)
	reg.RegisterAll()
	return r
}
