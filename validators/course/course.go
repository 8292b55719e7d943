package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type ListRequest struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Category int    `query:"category"`
	Level    string `query:"level"`
	Search   string `query:"search"`
}

// List validates catalog listing query parameters
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page < 0 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit < 0 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if reqData.Level != "" && reqData.Level != "beginner" && reqData.Level != "intermediate" && reqData.Level != "advanced" {
			errors["level"] = "Level must be one of beginner, intermediate or advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 {
			reqData.Limit = 10
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

type ChatMessageRequest struct {
	Message string `json:"message"`
}

// PostChatMessage validates the chat message body
func PostChatMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChatMessageRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		msg := strings.TrimSpace(reqData.Message)
		if msg == "" {
			errors["message"] = "Message is required!"
		} else if len(msg) > 2000 {
			errors["message"] = "Message must be at most 2000 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Message = msg
		c.Locals("validatedMessage", reqData)
		return c.Next()
	}
}

type VideoProgressRequest struct {
	MaterialID     uint `json:"material_id"`
	WatchedSeconds int  `json:"watched_duration_seconds"`
	TotalSeconds   int  `json:"total_duration_seconds"`
}

// UpdateVideoProgress validates a video progress report
func UpdateVideoProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VideoProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.MaterialID == 0 {
			errors["material_id"] = "Material id is required!"
		}
		if reqData.WatchedSeconds < 0 {
			errors["watched_duration_seconds"] = "Watched duration cannot be negative!"
		}
		if reqData.TotalSeconds < 0 {
			errors["total_duration_seconds"] = "Total duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
