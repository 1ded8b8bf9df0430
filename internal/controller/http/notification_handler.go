package http

import (
	"net/http"

	"music-library/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notificationUseCase: notificationUseCase}
}

type NotificationRequest struct {
	Message string `json:"message" binding:"required"`
}

// Create godoc
// @Summary      Create a broadcast notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body NotificationRequest true "Notification message"
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /notifications [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	var req NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	notification, err := h.notificationUseCase.Create(actorFromContext(c), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Notification created", "notification": notification})
}

// List godoc
// @Summary      List notifications
// @Description  Readable by any authenticated actor
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Notification
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notificationUseCase.List(actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// Get godoc
// @Summary      Get a notification by id
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      200  {object}  entity.Notification
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id} [get]
func (h *NotificationHandler) Get(c *gin.Context) {
	notification, err := h.notificationUseCase.Get(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

// Update godoc
// @Summary      Update a notification's message
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Param        request body NotificationRequest true "New message"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id} [put]
func (h *NotificationHandler) Update(c *gin.Context) {
	var req NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	notification, err := h.notificationUseCase.Update(actorFromContext(c), c.Param("id"), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification updated", "notification": notification})
}

// Delete godoc
// @Summary      Delete a notification
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.notificationUseCase.Delete(actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}
