package handler

import (
	"net/http"

	"github.com/Tiri0n/abkhazia-tax-service/internal/middleware"
	"github.com/Tiri0n/abkhazia-tax-service/internal/service"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/pagination"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type ObligationHandler struct {
	obligationService service.ObligationService
}

// NewObligationHandler sets up the routing dependencies for tax-obligation endpoints
func NewObligationHandler(obligationService service.ObligationService) *ObligationHandler {
	return &ObligationHandler{obligationService: obligationService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *ObligationHandler) RegisterRoutes(router *gin.RouterGroup) {
	obligations := router.Group("/tax-obligations", middleware.RequireAuth())
	{
		obligations.GET("", h.List)
		obligations.GET("/upcoming", h.ListUpcoming)
		obligations.POST("", h.Create)
	}
}

// List returns the caller's tax obligations in insertion order
// @Summary      List tax obligations
// @Tags         tax-obligations
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page (all when omitted)"
// @Success      200    {object}  response.Response{data=[]model.TaxObligation}
// @Failure      500    {object}  response.Response
// @Router       /api/tax-obligations [get]
func (h *ObligationHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	obligations, err := h.obligationService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	start, end := pagination.Parse(c).Window(len(obligations))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, obligations[start:end]))
}

// ListUpcoming returns pending obligations due after now, soonest first
// @Summary      List upcoming tax obligations
// @Tags         tax-obligations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.TaxObligation}
// @Failure      500  {object}  response.Response
// @Router       /api/tax-obligations/upcoming [get]
func (h *ObligationHandler) ListUpcoming(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	obligations, err := h.obligationService.ListUpcoming(c.Request.Context(), userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, obligations))
}

// Create records a new tax obligation owned by the caller
// @Summary      Create tax obligation
// @Tags         tax-obligations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateObligationRequest  true  "Obligation Payload"
// @Success      201      {object}  response.Response{data=model.TaxObligation}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/tax-obligations [post]
func (h *ObligationHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req service.CreateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, bindErrorMessage(err)))
		return
	}

	obligation, err := h.obligationService.Create(c.Request.Context(), userID, req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, obligation))
}
