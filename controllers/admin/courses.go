package adminController

import (
	"log"

	"lms/middleware"
	"lms/models"
	instructorValidator "lms/validators/instructor"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListCourses lists all courses regardless of status
func (h *AdminController) ListCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := h.DB.Model(&models.Course{}).Where("is_deleted = ?", false)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Preload("Instructor").Preload("Category").
		Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type courseItem struct {
		models.Course
		InstructorName string `json:"instructor_name"`
		CategoryName   string `json:"category_name"`
	}

	items := make([]courseItem, len(courses))
	for i, course := range courses {
		items[i] = courseItem{
			Course:         course,
			InstructorName: course.Instructor.Name,
			CategoryName:   course.Category.Name,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": items,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateCourse edits any course, ownership notwithstanding
func (h *AdminController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*instructorValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := h.DB.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

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
	if reqData.Status != "" {
		course.Status = reqData.Status
	}
	if reqData.Price > 0 {
		course.Price = reqData.Price
	}

	if err := h.DB.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course and its dependents in one transaction.
// Enrollments and materials go first; if any step fails everything rolls
// back and the course stays intact.
func (h *AdminController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := h.DB.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&models.CourseMaterial{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&course).Error; err != nil {
			return err
		}
		return nil
	})
	if txErr != nil {
		log.Printf("Error deleting course %d: %v", courseID, txErr)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
