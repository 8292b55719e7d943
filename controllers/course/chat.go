package courseController

import (
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

const chatPageSize = 100

// GetChat returns the course chat, oldest first. Member gate runs before this.
func (h *CourseController) GetChat(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var messages []models.ChatMessage
	if err := h.DB.Preload("User").Where("course_id = ?", courseID).
		Order("created_at asc").Limit(chatPageSize).Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	type chatItem struct {
		ID        uint   `json:"id"`
		UserID    uint   `json:"user_id"`
		UserName  string `json:"user_name"`
		Message   string `json:"message"`
		CreatedAt string `json:"created_at"`
	}

	items := make([]chatItem, len(messages))
	for i, m := range messages {
		items[i] = chatItem{
			ID:        m.ID,
			UserID:    m.UserID,
			UserName:  m.User.Name,
			Message:   m.Message,
			CreatedAt: m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", fiber.Map{
		"messages": items,
	})
}

// PostChat appends a message to the course chat. Messages are immutable.
func (h *CourseController) PostChat(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedMessage").(*courseValidator.ChatMessageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ChatMessage{
		CourseID: uint(courseID),
		UserID:   userID,
		Message:  reqData.Message,
	}

	if err := h.DB.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent!", message)
}
