package onlineClassValidator

import (
	"strings"
	"time"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

type ScheduleClassRequest struct {
	CourseID        uint   `json:"course_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ScheduledDate   string `json:"scheduled_date"` // RFC 3339
	DurationMinutes int    `json:"duration_minutes"`
	MaxParticipants int    `json:"max_participants"`
	EnableChat      *bool  `json:"enable_chat"`
	EnableRecording *bool  `json:"enable_recording"`

	ParsedDate time.Time `json:"-"`
}

func validateClassFields(reqData *ScheduleClassRequest, errors map[string]string, requireAll bool) {
	if requireAll && reqData.CourseID == 0 {
		errors["course_id"] = "Course id is required!"
	}
	if requireAll || reqData.Title != "" {
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
	}
	if requireAll || reqData.ScheduledDate != "" {
		parsed, err := time.Parse(time.RFC3339, reqData.ScheduledDate)
		if err != nil {
			errors["scheduled_date"] = "Scheduled date must be a valid RFC 3339 timestamp!"
		} else {
			reqData.ParsedDate = parsed
		}
	}
	if reqData.DurationMinutes < 0 || reqData.DurationMinutes > 600 {
		errors["duration_minutes"] = "Duration must be between 1 and 600 minutes!"
	}
	if reqData.MaxParticipants < 0 || reqData.MaxParticipants > 1000 {
		errors["max_participants"] = "Max participants must be between 1 and 1000!"
	}
}

// ScheduleClass validates a new online class
func ScheduleClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ScheduleClassRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateClassFields(reqData, errors, true)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

// UpdateClass validates an online class update; all fields optional
func UpdateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ScheduleClassRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateClassFields(reqData, errors, false)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

type StatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus validates a class status change. Any valid status can be set;
// there is no transition table.
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		switch reqData.Status {
		case models.ClassScheduled, models.ClassActive, models.ClassCompleted, models.ClassCancelled:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of scheduled, active, completed or cancelled!",
			})
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
