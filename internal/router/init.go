package router

import (
	"github.com/disastercare/relief-hub/internal/application"
	"github.com/disastercare/relief-hub/internal/container"
	"github.com/disastercare/relief-hub/internal/infrastructure/mongodb"
	handlers "github.com/disastercare/relief-hub/internal/interface/http"
	"github.com/disastercare/relief-hub/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup to wire up all modules.
func InitModules(r *Registry) {
	db := container.GetMongo()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userRepo := mongodb.NewUserRepository(db)
	supplyRepo := mongodb.NewSupplyRepository(db)
	volunteerRepo := mongodb.NewVolunteerRepository(db)

	userSvc := application.NewUserService(userRepo, container.GetJWT(), container.GetGCS(), cfg.GCSBucket, logger)
	supplySvc := application.NewSupplyService(supplyRepo, userRepo, container.GetRabbitPub(), container.GetES(), cfg.ESSuppliesIndex, logger)
	volunteerSvc := application.NewVolunteerService(volunteerRepo, logger)

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), container.GetJWT()))
	r.Add(modules.NewSupplyModule(handlers.NewSupplyHandler(supplySvc, logger)))
	r.Add(modules.NewVolunteerModule(handlers.NewVolunteerHandler(volunteerSvc, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
