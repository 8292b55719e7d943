package studentController

import (
	"log"

	"lms/middleware"
	"lms/models"
	"lms/utils"
	studentValidator "lms/validators/student"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StudentController struct {
	DB *gorm.DB
}

// Enroll joins the caller to a published course. Duplicate enrollment is a
// conflict; the unique index backs up the explicit check.
func (h *StudentController) Enroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*studentValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := h.DB.Where("id = ? AND status = ? AND is_deleted = ?", reqData.CourseID, models.CoursePublished, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	var existing models.Enrollment
	if err := h.DB.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: reqData.CourseID,
		Status:   models.EnrollmentInProgress,
	}

	if err := h.DB.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	}

	go func(userID uint, courseName string) {
		var user models.User
		if err := h.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			return
		}
		if err := utils.SendEnrollmentEmail(user.Email, user.Name, courseName); err != nil {
			log.Printf("Error sending enrollment email: %v", err)
		}
	}(userID, course.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// MyCourses lists the caller's enrollments with course details
func (h *StudentController) MyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	if err := h.DB.Preload("Course").Where("user_id = ?", userID).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type enrolledCourse struct {
		models.Enrollment
		CourseTitle  string `json:"course_title"`
		CourseSlug   string `json:"course_slug"`
		ThumbnailURL string `json:"thumbnail_url"`
	}

	items := make([]enrolledCourse, len(enrollments))
	for i, e := range enrollments {
		items[i] = enrolledCourse{
			Enrollment:   e,
			CourseTitle:  e.Course.Title,
			CourseSlug:   e.Course.Slug,
			ThumbnailURL: utils.FileURL(utils.ThumbnailDir, e.Course.Thumbnail),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": items,
	})
}

// MyClasses lists upcoming online classes across the caller's enrolled courses
func (h *StudentController) MyClasses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var classes []models.OnlineClass
	if err := h.DB.Joins("JOIN enrollments ON enrollments.course_id = online_classes.course_id").
		Where("enrollments.user_id = ? AND enrollments.deleted_at IS NULL AND online_classes.status = ? AND online_classes.is_deleted = ?",
			userID, models.ClassScheduled, false).
		Order("online_classes.scheduled_date asc").
		Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	type classItem struct {
		models.OnlineClass
		MeetingURL string `json:"meeting_url"`
	}

	items := make([]classItem, len(classes))
	for i, class := range classes {
		items[i] = classItem{OnlineClass: class, MeetingURL: utils.MeetingURL(class.MeetingRoomName)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", fiber.Map{
		"classes": items,
	})
}
