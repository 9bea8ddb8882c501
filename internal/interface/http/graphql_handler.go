package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// GraphQLHandler serves the single /graphql endpoint: POST executes
// operations, GET serves the GraphiQL page.
type GraphQLHandler struct {
	relay *relay.Handler
}

func NewGraphQLHandler(schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{relay: &relay.Handler{Schema: schema}}
}

func (h *GraphQLHandler) Query(c *gin.Context) {
	h.relay.ServeHTTP(c.Writer, c.Request)
}

func (h *GraphQLHandler) GraphiQL(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(graphiqlPage))
}
