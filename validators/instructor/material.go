package instructorValidator

import (
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

type MaterialRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Type        string `json:"type" form:"type"`
	Content     string `json:"content" form:"content"`
	OrderIndex  int    `json:"order_index" form:"order_index"`
	IsPreview   bool   `json:"is_preview" form:"is_preview"`
}

// CreateMaterial validates a new course material
func CreateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MaterialRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		switch reqData.Type {
		case models.MaterialVideo, models.MaterialDocument, models.MaterialQuiz, models.MaterialOther:
		default:
			errors["type"] = "Type must be one of video, document, quiz or other!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMaterial", reqData)
		return c.Next()
	}
}

// UpdateMaterial validates a material update; type change still has to be a valid type
func UpdateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MaterialRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != "" && len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Type != "" {
			switch reqData.Type {
			case models.MaterialVideo, models.MaterialDocument, models.MaterialQuiz, models.MaterialOther:
			default:
				errors["type"] = "Type must be one of video, document, quiz or other!"
			}
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMaterial", reqData)
		return c.Next()
	}
}
