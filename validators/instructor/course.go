package instructorValidator

import (
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

type CourseRequest struct {
	Title            string  `json:"title" form:"title"`
	CategoryID       uint    `json:"category_id" form:"category_id"`
	ShortDescription string  `json:"short_description" form:"short_description"`
	Description      string  `json:"description" form:"description"`
	Level            string  `json:"level" form:"level"`
	Language         string  `json:"language" form:"language"`
	Price            float64 `json:"price" form:"price"`
	DiscountPrice    float64 `json:"discount_price" form:"discount_price"`
	Status           string  `json:"status" form:"status"`
	Slug             string  `json:"slug" form:"slug"`
}

func validateCourseFields(reqData *CourseRequest, errors map[string]string, requireAll bool) {
	if requireAll || reqData.Title != "" {
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
	}
	if requireAll && reqData.CategoryID == 0 {
		errors["category_id"] = "Category is required!"
	}
	if reqData.Level != "" && reqData.Level != "beginner" && reqData.Level != "intermediate" && reqData.Level != "advanced" {
		errors["level"] = "Level must be one of beginner, intermediate or advanced!"
	}
	if reqData.Price < 0 {
		errors["price"] = "Price cannot be negative!"
	}
	if reqData.DiscountPrice < 0 {
		errors["discount_price"] = "Discount price cannot be negative!"
	}
	if reqData.Status != "" &&
		reqData.Status != models.CourseDraft &&
		reqData.Status != models.CoursePublished &&
		reqData.Status != models.CourseArchived {
		errors["status"] = "Status must be one of draft, published or archived!"
	}
}

// CreateCourse validates a new course
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateCourseFields(reqData, errors, true)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates a course update; all fields optional
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateCourseFields(reqData, errors, false)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
