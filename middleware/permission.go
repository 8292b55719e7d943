package middleware

import (
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that rejects requests whose token role is
// not in the allowed set. Runs after JWTMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}

// IsCourseMember returns a middleware that resolves whether the caller is the
// course's instructor or holds an enrollment for it. One lookup per request;
// a nonexistent course is a 404, a non-member a 403. Admins pass.
func IsCourseMember(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		courseID, err := c.ParamsInt("id")
		if err != nil || courseID < 1 {
			return JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		c.Locals("courseID", courseID)

		if role, _ := c.Locals("role").(string); role == models.RoleAdmin {
			return c.Next()
		}

		if course.InstructorID == userID {
			return c.Next()
		}

		var enrollment models.Enrollment
		if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return JsonResponse(c, fiber.StatusForbidden, false, "You are not a member of this course!", nil)
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking course access!", nil)
		}

		return c.Next()
	}
}
