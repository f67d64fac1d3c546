package router

import (
	appuser "github.com/oksasatya/go-ddd-user-service/internal/application"
	"github.com/oksasatya/go-ddd-user-service/internal/container"
	repouser "github.com/oksasatya/go-ddd-user-service/internal/domain/repository"
	handlers "github.com/oksasatya/go-ddd-user-service/internal/interface/http"
	"github.com/oksasatya/go-ddd-user-service/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *appuser.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := container.GetUserRepository()
	service := appuser.NewService(repo)
	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	rdb := container.GetRedis()

	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler, rdb, cfg.RateLimitPerMinute))

	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}

	var store handlers.Pinger
	if repos := container.GetRepositories(); repos != nil {
		store = repos
	}
	r.AddRoot(modules.NewHealthModule(handlers.NewHealthHandler(store, container.GetLogger())))

	if m := container.GetMetrics(); m != nil {
		r.AddRoot(modules.NewMetricsModule(m.Handler(), rdb))
	}
}
