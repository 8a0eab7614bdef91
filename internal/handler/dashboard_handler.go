package handler

import (
	"net/http"

	"github.com/Tiri0n/abkhazia-tax-service/internal/middleware"
	"github.com/Tiri0n/abkhazia-tax-service/internal/service"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler sets up the routing dependencies for the dashboard endpoint
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard", middleware.RequireAuth())
	{
		dashboard.GET("/summary", h.Summary)
	}
}

// Summary returns the caller's aggregated tax position
// @Summary      Dashboard summary
// @Description  Aggregates obligation totals, upcoming deadlines and unread notification count for the caller
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=service.DashboardSummary}
// @Failure      500  {object}  response.Response
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}
