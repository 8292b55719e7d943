package adminController

import (
	"time"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// Statistics returns platform-wide counts, computed fresh per request
func (h *AdminController) Statistics(c *fiber.Ctx) error {
	var totalUsers, students, instructors, parents, admins int64
	h.DB.Model(&models.User{}).Where("status <> ?", models.UserDeleted).Count(&totalUsers)
	h.DB.Model(&models.User{}).Where("role = ? AND status <> ?", models.RoleStudent, models.UserDeleted).Count(&students)
	h.DB.Model(&models.User{}).Where("role = ? AND status <> ?", models.RoleInstructor, models.UserDeleted).Count(&instructors)
	h.DB.Model(&models.User{}).Where("role = ? AND status <> ?", models.RoleParent, models.UserDeleted).Count(&parents)
	h.DB.Model(&models.User{}).Where("role = ? AND status <> ?", models.RoleAdmin, models.UserDeleted).Count(&admins)

	var totalCourses, publishedCourses, draftCourses int64
	h.DB.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	h.DB.Model(&models.Course{}).Where("status = ? AND is_deleted = ?", models.CoursePublished, false).Count(&publishedCourses)
	h.DB.Model(&models.Course{}).Where("status = ? AND is_deleted = ?", models.CourseDraft, false).Count(&draftCourses)

	var totalEnrollments, completedEnrollments int64
	h.DB.Model(&models.Enrollment{}).Count(&totalEnrollments)
	h.DB.Model(&models.Enrollment{}).Where("status = ?", models.EnrollmentCompleted).Count(&completedEnrollments)

	var totalClasses int64
	h.DB.Model(&models.OnlineClass{}).Where("is_deleted = ?", false).Count(&totalClasses)

	var revenue float64
	h.DB.Model(&models.Enrollment{}).
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Select("COALESCE(SUM(courses.price), 0)").Scan(&revenue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", fiber.Map{
		"users": fiber.Map{
			"total":       totalUsers,
			"students":    students,
			"instructors": instructors,
			"parents":     parents,
			"admins":      admins,
		},
		"courses": fiber.Map{
			"total":     totalCourses,
			"published": publishedCourses,
			"draft":     draftCourses,
		},
		"enrollments": fiber.Map{
			"total":     totalEnrollments,
			"completed": completedEnrollments,
		},
		"online_classes": totalClasses,
		"revenue":        revenue,
	})
}

type dailyCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// Analytics groups registrations and enrollments by day over a window ending
// today. The window defaults to 30 days.
func (h *AdminController) Analytics(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days < 1 || days > 365 {
		days = 30
	}

	end := now.EndOfDay()
	start := now.With(time.Now().AddDate(0, 0, -(days - 1))).BeginningOfDay()

	var registrations []dailyCount
	if err := h.DB.Model(&models.User{}).
		Select("DATE(created_at) as day, COUNT(*) as count").
		Where("created_at BETWEEN ? AND ?", start, end).
		Group("DATE(created_at)").Order("day asc").
		Scan(&registrations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
	}

	var enrollments []dailyCount
	if err := h.DB.Model(&models.Enrollment{}).
		Select("DATE(created_at) as day, COUNT(*) as count").
		Where("created_at BETWEEN ? AND ?", start, end).
		Group("DATE(created_at)").Order("day asc").
		Scan(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch analytics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", fiber.Map{
		"from":          start.Format("2006-01-02"),
		"to":            end.Format("2006-01-02"),
		"registrations": registrations,
		"enrollments":   enrollments,
	})
}
