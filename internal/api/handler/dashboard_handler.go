package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Hritik-Singh067/crm-backend/internal/api/metrics"
	"github.com/Hritik-Singh067/crm-backend/internal/core/ports"
)

// DashboardHandler serves the aggregate statistics view.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /dashboard. All four aggregations complete before the
// response is emitted.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.DashboardStats
// @Failure      500  {object}  map[string]string
// @Router       /dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	started := time.Now()

	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.DashboardQueryDuration.Observe(time.Since(started).Seconds())
	return c.JSON(http.StatusOK, stats)
}
