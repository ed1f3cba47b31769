package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// livenessMessage is the fixed string served at the root route.
const livenessMessage = "CRM backend up and running"

// StatusHandler serves the liveness string and the dependency readiness
// probe.
type StatusHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewStatusHandler(db *mongo.Database, rdb *redis.Client) *StatusHandler {
	return &StatusHandler{mongo: db, redis: rdb}
}

// Root handles GET /. Liveness only: returns the fixed string immediately.
//
// @Summary      Liveness
// @Tags         status
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func (h *StatusHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, livenessMessage)
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness handles GET /healthz, checking MongoDB and Redis connectivity
// before declaring the service ready.
//
// @Summary      Readiness
// @Tags         status
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /healthz [get]
func (h *StatusHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["mongodb"] = dependencyStatus{Status: "ok"}
	}

	if _, err := h.redis.Ping(ctx).Result(); err != nil {
		deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["redis"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
