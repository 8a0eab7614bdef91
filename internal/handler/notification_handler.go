package handler

import (
	"net/http"

	"github.com/Tiri0n/abkhazia-tax-service/internal/middleware"
	"github.com/Tiri0n/abkhazia-tax-service/internal/service"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/pagination"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler sets up the routing dependencies for notification endpoints
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications", middleware.RequireAuth())
	{
		notifications.GET("", h.List)
		notifications.GET("/unread", h.ListUnread)
		notifications.POST("", h.Create)
		notifications.POST("/:id/read", h.MarkRead)
	}
}

// List returns the caller's notifications, most recent first
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page (all when omitted)"
// @Success      200    {object}  response.Response{data=[]model.Notification}
// @Failure      500    {object}  response.Response
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	start, end := pagination.Parse(c).Window(len(notifications))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, notifications[start:end]))
}

// ListUnread returns only the caller's unread notifications
// @Summary      List unread notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Notification}
// @Failure      500  {object}  response.Response
// @Router       /api/notifications/unread [get]
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListUnreadForUser(c.Request.Context(), userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, notifications))
}

// Create records a notification for the caller and pushes it over websocket
// @Summary      Create notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateNotificationRequest  true  "Notification Payload"
// @Success      201      {object}  response.Response{data=model.Notification}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/notifications [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req service.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, bindErrorMessage(err)))
		return
	}

	notification, err := h.notificationService.Create(c.Request.Context(), userID, req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, notification))
}

// MarkRead flips a notification's read flag; calling it twice is harmless
// @Summary      Mark notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  response.Response{data=model.Notification}
// @Failure      404  {object}  response.Response
// @Router       /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, notification))
}
