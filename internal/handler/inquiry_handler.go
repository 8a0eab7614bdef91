package handler

import (
	"net/http"

	"github.com/Tiri0n/abkhazia-tax-service/internal/middleware"
	"github.com/Tiri0n/abkhazia-tax-service/internal/service"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/pagination"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryService service.InquiryService
}

// NewInquiryHandler sets up the routing dependencies for inquiry endpoints
func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *InquiryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inquiries := router.Group("/inquiries", middleware.RequireAuth())
	{
		inquiries.GET("", h.List)
		inquiries.GET("/:id", h.Get)
		inquiries.POST("", h.Create)
	}
}

// List returns the caller's inquiries, most recent first
// @Summary      List inquiries
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page (all when omitted)"
// @Success      200    {object}  response.Response{data=[]model.Inquiry}
// @Failure      500    {object}  response.Response
// @Router       /api/inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	inquiries, err := h.inquiryService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	start, end := pagination.Parse(c).Window(len(inquiries))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, inquiries[start:end]))
}

// Get returns a single inquiry owned by the caller
// @Summary      Get inquiry
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Inquiry ID"
// @Success      200  {object}  response.Response{data=model.Inquiry}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/inquiries/{id} [get]
func (h *InquiryHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	inquiry, err := h.inquiryService.Get(c.Request.Context(), userID, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, inquiry))
}

// Create opens a new support inquiry for the caller
// @Summary      Create inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateInquiryRequest  true  "Inquiry Payload"
// @Success      201      {object}  response.Response{data=model.Inquiry}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req service.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, bindErrorMessage(err)))
		return
	}

	inquiry, err := h.inquiryService.Create(c.Request.Context(), userID, req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, inquiry))
}
