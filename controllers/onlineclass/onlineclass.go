package onlineClassController

import (
	"fmt"

	"lms/middleware"
	"lms/models"
	"lms/utils"
	onlineClassValidator "lms/validators/onlineclass"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OnlineClassController struct {
	DB *gorm.DB
}

// ownClass loads a class and checks the caller scheduled it. On failure the
// 404/403 response is already written and callers must stop.
func (h *OnlineClassController) ownClass(c *fiber.Ctx, classID int) (*models.OnlineClass, bool) {
	userID, _ := c.Locals("userId").(uint)

	var class models.OnlineClass
	if err := h.DB.Where("id = ? AND is_deleted = ?", classID, false).First(&class).Error; err != nil {
		_ = middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		return nil, false
	}
	if class.InstructorID != userID {
		_ = middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this class!", nil)
		return nil, false
	}
	return &class, true
}

// Schedule creates an online class on one of the caller's own courses. The
// meeting room is a generated name; conferencing is the provider's problem.
func (h *OnlineClassController) Schedule(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedClass").(*onlineClassValidator.ScheduleClassRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := h.DB.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.InstructorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	duration := reqData.DurationMinutes
	if duration == 0 {
		duration = 60
	}
	maxParticipants := reqData.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = 50
	}

	roomName := fmt.Sprintf("course-%d-%s", course.ID, uuid.New().String()[:8])

	class := models.OnlineClass{
		CourseID:        course.ID,
		InstructorID:    userID,
		Title:           reqData.Title,
		Description:     reqData.Description,
		ScheduledDate:   reqData.ParsedDate,
		DurationMinutes: duration,
		MeetingRoomName: roomName,
		MaxParticipants: maxParticipants,
		Status:          models.ClassScheduled,
	}
	if reqData.EnableChat != nil {
		class.EnableChat = *reqData.EnableChat
	} else {
		class.EnableChat = true
	}
	if reqData.EnableRecording != nil {
		class.EnableRecording = *reqData.EnableRecording
	}

	if err := h.DB.Create(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule class!", nil)
	}

	go utils.RegisterMeetingRoom(roomName, class.ScheduledDate, class.DurationMinutes, class.MaxParticipants)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Class scheduled successfully!", fiber.Map{
		"class":       class,
		"meeting_url": utils.MeetingURL(roomName),
	})
}

// ListOwn lists the caller's scheduled classes
func (h *OnlineClassController) ListOwn(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var classes []models.OnlineClass
	if err := h.DB.Where("instructor_id = ? AND is_deleted = ?", userID, false).
		Order("scheduled_date desc").Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	type classItem struct {
		models.OnlineClass
		MeetingURL    string `json:"meeting_url"`
		AttendeeCount int64  `json:"attendee_count"`
	}

	items := make([]classItem, len(classes))
	for i, class := range classes {
		var count int64
		h.DB.Model(&models.ClassAttendance{}).Where("online_class_id = ?", class.ID).Count(&count)
		items[i] = classItem{
			OnlineClass:   class,
			MeetingURL:    utils.MeetingURL(class.MeetingRoomName),
			AttendeeCount: count,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", fiber.Map{
		"classes": items,
	})
}

// Update edits scheduling metadata on one of the caller's own classes
func (h *OnlineClassController) Update(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	class, ok := h.ownClass(c, classID)
	if !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedClass").(*onlineClassValidator.ScheduleClassRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		class.Title = reqData.Title
	}
	if reqData.Description != "" {
		class.Description = reqData.Description
	}
	if !reqData.ParsedDate.IsZero() {
		class.ScheduledDate = reqData.ParsedDate
	}
	if reqData.DurationMinutes > 0 {
		class.DurationMinutes = reqData.DurationMinutes
	}
	if reqData.MaxParticipants > 0 {
		class.MaxParticipants = reqData.MaxParticipants
	}
	if reqData.EnableChat != nil {
		class.EnableChat = *reqData.EnableChat
	}
	if reqData.EnableRecording != nil {
		class.EnableRecording = *reqData.EnableRecording
	}

	if err := h.DB.Save(class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully!", class)
}

// UpdateStatus sets the class status. Any status can be set, there is no
// transition table.
func (h *OnlineClassController) UpdateStatus(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	class, ok := h.ownClass(c, classID)
	if !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedStatus").(*onlineClassValidator.StatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	class.Status = reqData.Status
	if err := h.DB.Save(class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class status updated successfully!", class)
}

// Delete removes one of the caller's own classes
func (h *OnlineClassController) Delete(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	class, ok := h.ownClass(c, classID)
	if !ok {
		return nil
	}

	class.IsDeleted = true
	if err := h.DB.Save(class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class deleted successfully!", nil)
}
