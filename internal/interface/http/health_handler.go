package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/easyevent/api/pkg/response"
)

// HealthHandler reports process liveness and store reachability.
type HealthHandler struct {
	Pool   *pgxpool.Pool
	Logger *logrus.Logger
}

func NewHealthHandler(pool *pgxpool.Pool, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Pool: pool, Logger: logger}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.Pool.Ping(ctx); err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("health check: store unreachable")
		}
		resp := response.Error[any](c, http.StatusServiceUnavailable, "store unreachable", nil)
		c.JSON(resp.Status, resp)
		return
	}
	resp := response.Success[any](c, http.StatusOK, nil, "ok")
	c.JSON(resp.Status, resp)
}
