package adminController

import (
	"log"

	"lms/middleware"
	"lms/models"
	adminValidator "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// Broadcast creates a notification for every active user, optionally
// filtered by role, in one bulk insert.
func (h *AdminController) Broadcast(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBroadcast").(*adminValidator.BroadcastRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := h.DB.Model(&models.User{}).Where("status = ?", models.UserActive)
	if reqData.Role != "" {
		db = db.Where("role = ?", reqData.Role)
	}

	var userIDs []uint
	if err := db.Pluck("id", &userIDs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recipients!", nil)
	}
	if len(userIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No recipients matched.", fiber.Map{"sent": 0})
	}

	notifications := make([]models.Notification, len(userIDs))
	for i, id := range userIDs {
		notifications[i] = models.Notification{
			UserID:  id,
			Title:   reqData.Title,
			Message: reqData.Message,
		}
	}

	if err := h.DB.CreateInBatches(&notifications, 500).Error; err != nil {
		log.Printf("Error broadcasting notification: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Notifications sent!", fiber.Map{
		"sent": len(notifications),
	})
}

// MyNotifications lists the caller's notifications, newest first
func (h *AdminController) MyNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var notifications []models.Notification
	if err := h.DB.Where("user_id = ?", userID).
		Order("created_at desc").Limit(100).Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": notifications,
	})
}

// MarkNotificationRead flags one of the caller's notifications as read
func (h *AdminController) MarkNotificationRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notificationID, err := c.ParamsInt("id")
	if err != nil || notificationID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification id!", nil)
	}

	var notification models.Notification
	if err := h.DB.Where("id = ? AND user_id = ?", notificationID, userID).First(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	notification.IsRead = true
	if err := h.DB.Save(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read.", notification)
}
