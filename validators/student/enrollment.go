package studentValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type EnrollRequest struct {
	CourseID uint `json:"course_id"`
}

// Enroll validates an enrollment request
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_id": "Course id is required!",
			})
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}
