package router

import (
	"github.com/easyevent/api/internal/application"
	"github.com/easyevent/api/internal/container"
	"github.com/easyevent/api/internal/graph"
	pginfra "github.com/easyevent/api/internal/infrastructure/postgres"
	handlers "github.com/easyevent/api/internal/interface/http"
	"github.com/easyevent/api/internal/router/modules"
	"github.com/easyevent/api/pkg/helpers"
)

// buildGraphQLModule wires repositories, services, the root resolver and the
// schema into the single /graphql feature module.
func buildGraphQLModule() *modules.GraphQLModule {
	pool := container.GetPGPool()
	cfg := container.GetConfig()
	logger := container.GetLogger()

	eventRepo := pginfra.NewEventRepository(pool)
	userRepo := pginfra.NewUserRepository(pool)
	txManager := pginfra.NewTxManager(pool)

	eventSvc := application.NewEventService(
		eventRepo,
		userRepo,
		txManager,
		container.GetIdentity(),
		container.GetRabbitPub(),
		logger,
	)
	userSvc := application.NewUserService(
		userRepo,
		helpers.NewHasher(cfg.BcryptCost),
		logger,
	)

	schema := graph.MustParseSchema(graph.NewResolver(eventSvc, userSvc, logger))
	gqlHandler := handlers.NewGraphQLHandler(schema)
	healthHandler := handlers.NewHealthHandler(pool, logger)

	return modules.NewGraphQLModule(gqlHandler, healthHandler)
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(buildGraphQLModule())
}
