package courseController

import (
	"lms/middleware"
	"lms/models"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CourseController struct {
	DB *gorm.DB
}

type courseListItem struct {
	models.Course
	InstructorName string `json:"instructor_name"`
	CategoryName   string `json:"category_name"`
	ThumbnailURL   string `json:"thumbnail_url"`
}

// List is the public catalog: published courses only
func (h *CourseController) List(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*courseValidator.ListRequest)
	if !ok {
		reqData = &courseValidator.ListRequest{Page: 1, Limit: 10}
	}
	offset := (reqData.Page - 1) * reqData.Limit

	db := h.DB.Model(&models.Course{}).Where("status = ? AND is_deleted = ?", models.CoursePublished, false)

	if reqData.Category > 0 {
		db = db.Where("category_id = ?", reqData.Category)
	}
	if reqData.Level != "" {
		db = db.Where("level = ?", reqData.Level)
	}
	if reqData.Search != "" {
		search := "%" + reqData.Search + "%"
		db = db.Where("title LIKE ? OR description LIKE ?", search, search)
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Preload("Instructor").Preload("Category").
		Offset(offset).Limit(reqData.Limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	items := make([]courseListItem, len(courses))
	for i, course := range courses {
		items[i] = courseListItem{
			Course:         course,
			InstructorName: course.Instructor.Name,
			CategoryName:   course.Category.Name,
			ThumbnailURL:   utils.FileURL(utils.ThumbnailDir, course.Thumbnail),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": items,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// Details returns a published course. Draft and archived courses are only
// reachable through the instructor and admin surfaces.
func (h *CourseController) Details(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := h.DB.Preload("Instructor").Preload("Category").
		Where("id = ? AND is_deleted = ?", courseID, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Unpublished courses are only visible to their instructor and admins;
	// everyone else gets the same 404 as a missing course.
	if course.Status != models.CoursePublished {
		userID, _ := c.Locals("userId").(uint)
		role, _ := c.Locals("role").(string)
		if role != models.RoleAdmin && course.InstructorID != userID {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
	}

	var enrollmentCount int64
	h.DB.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollmentCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":           course,
		"instructor_name":  course.Instructor.Name,
		"category_name":    course.Category.Name,
		"thumbnail_url":    utils.FileURL(utils.ThumbnailDir, course.Thumbnail),
		"enrollment_count": enrollmentCount,
	})
}

// Materials lists course materials. Members (instructor, enrolled students,
// admins) see everything; any other authenticated user only previews.
func (h *CourseController) Materials(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := h.DB.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	role, _ := c.Locals("role").(string)
	isMember := role == models.RoleAdmin || course.InstructorID == userID
	if !isMember {
		var enrollment models.Enrollment
		if err := h.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err == nil {
			isMember = true
		}
	}

	db := h.DB.Where("course_id = ? AND is_deleted = ?", courseID, false)
	if !isMember {
		db = db.Where("is_preview = ?", true)
	}

	var materials []models.CourseMaterial
	if err := db.Order("order_index asc, created_at asc").Find(&materials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch materials!", nil)
	}

	type materialItem struct {
		models.CourseMaterial
		FileURL string `json:"file_url"`
	}

	items := make([]materialItem, len(materials))
	for i, m := range materials {
		items[i] = materialItem{CourseMaterial: m, FileURL: materialFileURL(m)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Materials fetched successfully!", fiber.Map{
		"materials": items,
		"is_member": isMember,
	})
}

func materialFileURL(m models.CourseMaterial) string {
	switch m.Type {
	case models.MaterialVideo:
		return utils.FileURL(utils.VideoDir, m.FilePath)
	case models.MaterialDocument:
		return utils.FileURL(utils.DocumentDir, m.FilePath)
	default:
		return ""
	}
}

// Classes lists the online classes of a course for its members
func (h *CourseController) Classes(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var classes []models.OnlineClass
	if err := h.DB.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("scheduled_date asc").Find(&classes).Error; err != nil {
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
