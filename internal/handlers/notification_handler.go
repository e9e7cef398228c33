package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finai/internal/engine"
)

// NotificationHandler handles notification requests
type NotificationHandler struct {
	engine *engine.Manager
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(eng *engine.Manager) *NotificationHandler {
	return &NotificationHandler{engine: eng}
}

// ListNotifications returns the user's current notifications
// @Summary     List notifications
// @Description Get transient alerts derived from the current financial state
// @Tags        notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} engine.Notification "Notifications"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": h.engine.Session(userID).Notifications()})
}

// MarkAllRead marks every current notification as read
// @Summary     Mark notifications read
// @Description Mark all current notifications as read
// @Tags        notifications
// @Produce     json
// @Security    BearerAuth
// @Success     204 "Marked read"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /notifications/read [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.engine.Session(userID).MarkNotificationsRead()
	c.Status(http.StatusNoContent)
}
