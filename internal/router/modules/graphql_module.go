package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/api/internal/container"
	handlers "github.com/easyevent/api/internal/interface/http"
	"github.com/easyevent/api/internal/interface/middleware"
)

// GraphQLModule wires the GraphQL endpoint and health route.
// POST /graphql executes operations, GET /graphql serves GraphiQL,
// GET /healthz reports liveness.
type GraphQLModule struct {
	GraphQL *handlers.GraphQLHandler
	Health  *handlers.HealthHandler
}

func NewGraphQLModule(gql *handlers.GraphQLHandler, health *handlers.HealthHandler) *GraphQLModule {
	return &GraphQLModule{GraphQL: gql, Health: health}
}

func (m *GraphQLModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP()) // 120 req/min per IP
	bearer := middleware.BearerIdentity(container.GetJWT())

	rg.POST("/graphql", limiter, bearer, m.GraphQL.Query)
	rg.GET("/graphql", m.GraphQL.GraphiQL)
	rg.GET("/healthz", m.Health.Health)
}
