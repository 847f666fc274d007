package handlers

import (
	"net/http"

	"workhive_backend/internal/repositories"
	"workhive_backend/internal/services"
	"workhive_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService, v *validator.Validator) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         NewBaseHandler(v),
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(authed *gin.RouterGroup) {
	notifications := authed.Group("/notifications")
	{
		notifications.GET("", h.GetNotifications)
		notifications.GET("/unread-count", h.GetUnreadCount)
		notifications.PUT("/read-all", h.MarkAllRead)
		notifications.PUT("/:notificationId/read", h.MarkRead)
		notifications.DELETE("/:notificationId", h.Delete)
	}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	recipientID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	criteria := repositories.NotificationCriteria{
		UnreadOnly: c.Query("unread_only") == "true",
		Page:       page,
		PageSize:   pageSize,
	}

	resp, err := h.notificationService.GetUserNotifications(recipientID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	recipientID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.GetUnreadCount(recipientID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	recipientID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	notificationID, ok := h.RequireUUIDParam(c, "notificationId")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(recipientID, notificationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	recipientID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(recipientID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	recipientID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	notificationID, ok := h.RequireUUIDParam(c, "notificationId")
	if !ok {
		return
	}

	if err := h.notificationService.Delete(recipientID, notificationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}
