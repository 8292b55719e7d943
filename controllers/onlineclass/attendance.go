package onlineClassController

import (
	"time"

	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// Join records a student joining a class. One attendance row per student and
// class; rejoin after leaving reopens the same row.
func (h *OnlineClassController) Join(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	var class models.OnlineClass
	if err := h.DB.Where("id = ? AND is_deleted = ?", classID, false).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}
	if class.Status == models.ClassCancelled || class.Status == models.ClassCompleted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Class is no longer joinable!", nil)
	}

	// Only enrolled students of the class's course may join
	var enrollment models.Enrollment
	if err := h.DB.Where("user_id = ? AND course_id = ?", userID, class.CourseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var existing models.ClassAttendance
	if err := h.DB.Where("online_class_id = ? AND user_id = ?", classID, userID).First(&existing).Error; err == nil {
		if existing.Status == models.AttendanceJoined {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already joined this class!", nil)
		}
		joinedAt := time.Now()
		existing.JoinedAt = &joinedAt
		existing.LeftAt = nil
		existing.Status = models.AttendanceJoined
		if err := h.DB.Save(&existing).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to join class!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Joined class!", fiber.Map{
			"attendance":  existing,
			"meeting_url": utils.MeetingURL(class.MeetingRoomName),
		})
	}

	// Only students currently in the room hold a seat; a leave frees one.
	var attendeeCount int64
	h.DB.Model(&models.ClassAttendance{}).
		Where("online_class_id = ? AND status = ?", classID, models.AttendanceJoined).
		Count(&attendeeCount)
	if class.MaxParticipants > 0 && attendeeCount >= int64(class.MaxParticipants) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Class is full!", nil)
	}

	joinedAt := time.Now()
	attendance := models.ClassAttendance{
		OnlineClassID: uint(classID),
		UserID:        userID,
		JoinedAt:      &joinedAt,
		Status:        models.AttendanceJoined,
	}

	if err := h.DB.Create(&attendance).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already joined this class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Joined class!", fiber.Map{
		"attendance":  attendance,
		"meeting_url": utils.MeetingURL(class.MeetingRoomName),
	})
}

// Leave closes the caller's attendance row for a class
func (h *OnlineClassController) Leave(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	var attendance models.ClassAttendance
	if err := h.DB.Where("online_class_id = ? AND user_id = ?", classID, userID).First(&attendance).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "You have not joined this class!", nil)
	}

	leftAt := time.Now()
	attendance.LeftAt = &leftAt
	attendance.Status = models.AttendanceLeft
	if err := h.DB.Save(&attendance).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to leave class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Left class!", attendance)
}
