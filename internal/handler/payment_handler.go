package handler

import (
	"net/http"

	"github.com/Tiri0n/abkhazia-tax-service/internal/middleware"
	"github.com/Tiri0n/abkhazia-tax-service/internal/service"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/pagination"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler sets up the routing dependencies for payment endpoints
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	payments := router.Group("/payments", middleware.RequireAuth())
	{
		payments.GET("", h.List)
		payments.GET("/:id", h.Get)
		payments.POST("", h.Create)
	}
}

// List returns the caller's payments, most recent first
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page (all when omitted)"
// @Success      200    {object}  response.Response{data=[]model.Payment}
// @Failure      500    {object}  response.Response
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	start, end := pagination.Parse(c).Window(len(payments))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, payments[start:end]))
}

// Get returns a single payment owned by the caller
// @Summary      Get payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  response.Response{data=model.Payment}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.Get(c.Request.Context(), userID, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, payment))
}

// Create records a payment; a payment referencing an obligation marks it paid
// @Summary      Create payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreatePaymentRequest  true  "Payment Payload"
// @Success      201      {object}  response.Response{data=model.Payment}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, bindErrorMessage(err)))
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), userID, req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, payment))
}
