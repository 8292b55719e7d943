package instructorController

import (
	"log"

	"lms/middleware"
	"lms/models"
	"lms/utils"
	instructorValidator "lms/validators/instructor"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InstructorController struct {
	DB *gorm.DB
}

// ownCourse loads a course and checks the caller teaches it. Ownership is
// re-verified here on every mutation; the id always comes from the path, not
// the body. On failure the 404/403 response is already written and callers
// must stop without touching the nil course.
func (h *InstructorController) ownCourse(c *fiber.Ctx, courseID int) (*models.Course, bool) {
	userID, _ := c.Locals("userId").(uint)

	var course models.Course
	if err := h.DB.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		_ = middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		return nil, false
	}
	if course.InstructorID != userID {
		_ = middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
		return nil, false
	}
	return &course, true
}

// ListOwn lists the instructor's courses with enrollment counts
func (h *InstructorController) ListOwn(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	if err := h.DB.Where("instructor_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type courseItem struct {
		models.Course
		EnrollmentCount int64  `json:"enrollment_count"`
		ThumbnailURL    string `json:"thumbnail_url"`
	}

	items := make([]courseItem, len(courses))
	for i, course := range courses {
		var count int64
		h.DB.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&count)
		items[i] = courseItem{
			Course:          course,
			EnrollmentCount: count,
			ThumbnailURL:    utils.FileURL(utils.ThumbnailDir, course.Thumbnail),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": items,
	})
}

// CreateCourse creates a draft course owned by the caller
func (h *InstructorController) CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*instructorValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var category models.Category
	if err := h.DB.Where("id = ? AND is_deleted = ?", reqData.CategoryID, false).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	slug := reqData.Slug
	if slug == "" {
		slug = utils.Slugify(reqData.Title)
	}
	if err := h.DB.Where("slug = ?", slug).First(&models.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this slug already exists!", nil)
	}

	thumbnail := ""
	if file, err := c.FormFile("thumbnail"); err == nil && file != nil {
		thumbnail, err = utils.SaveUploadedFile(file, utils.ThumbnailDir)
		if err != nil {
			log.Printf("Error saving thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
		}
	}

	status := reqData.Status
	if status == "" {
		status = models.CourseDraft
	}
	level := reqData.Level
	if level == "" {
		level = "beginner"
	}

	course := models.Course{
		InstructorID:     userID,
		CategoryID:       reqData.CategoryID,
		Title:            reqData.Title,
		Slug:             slug,
		ShortDescription: reqData.ShortDescription,
		Description:      reqData.Description,
		Level:            level,
		Language:         reqData.Language,
		Price:            reqData.Price,
		DiscountPrice:    reqData.DiscountPrice,
		Thumbnail:        thumbnail,
		Status:           status,
	}

	if err := h.DB.Create(&course).Error; err != nil {
		utils.DeleteUploadedFile(utils.ThumbnailDir, thumbnail)
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates one of the caller's own courses
func (h *InstructorController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	course, ok := h.ownCourse(c, courseID)
	if !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedCourse").(*instructorValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.CategoryID != 0 {
		var category models.Category
		if err := h.DB.Where("id = ? AND is_deleted = ?", reqData.CategoryID, false).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		course.CategoryID = reqData.CategoryID
	}

	if reqData.Slug != "" && reqData.Slug != course.Slug {
		if err := h.DB.Where("slug = ? AND id <> ?", reqData.Slug, course.ID).First(&models.Course{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this slug already exists!", nil)
		}
		course.Slug = reqData.Slug
	}

	newThumbnail := ""
	if file, err := c.FormFile("thumbnail"); err == nil && file != nil {
		newThumbnail, err = utils.SaveUploadedFile(file, utils.ThumbnailDir)
		if err != nil {
			log.Printf("Error saving thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
		}
	}
	oldThumbnail := course.Thumbnail

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.ShortDescription != "" {
		course.ShortDescription = reqData.ShortDescription
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Language != "" {
		course.Language = reqData.Language
	}
	if reqData.Price > 0 {
		course.Price = reqData.Price
	}
	if reqData.DiscountPrice > 0 {
		course.DiscountPrice = reqData.DiscountPrice
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}
	if newThumbnail != "" {
		course.Thumbnail = newThumbnail
	}

	if err := h.DB.Save(course).Error; err != nil {
		utils.DeleteUploadedFile(utils.ThumbnailDir, newThumbnail)
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	if newThumbnail != "" && oldThumbnail != "" {
		utils.DeleteUploadedFile(utils.ThumbnailDir, oldThumbnail)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// Students lists enrolled students for one of the caller's own courses
func (h *InstructorController) Students(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if _, ok := h.ownCourse(c, courseID); !ok {
		return nil
	}

	var enrollments []models.Enrollment
	if err := h.DB.Preload("User").Where("course_id = ?", courseID).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	type studentItem struct {
		UserID     uint    `json:"user_id"`
		Name       string  `json:"name"`
		Email      string  `json:"email"`
		Progress   float64 `json:"progress_percentage"`
		Status     string  `json:"status"`
		EnrolledAt string  `json:"enrolled_at"`
	}

	items := make([]studentItem, len(enrollments))
	for i, e := range enrollments {
		items[i] = studentItem{
			UserID:     e.UserID,
			Name:       e.User.Name,
			Email:      e.User.Email,
			Progress:   e.Progress,
			Status:     e.Status,
			EnrolledAt: e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"students": items,
	})
}
