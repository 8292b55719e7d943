package adminController

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// ExportUsers streams the user list as JSON or CSV
func (h *AdminController) ExportUsers(c *fiber.Ctx) error {
	format, _ := c.Locals("exportFormat").(string)

	var users []models.User
	if err := h.DB.Order("id asc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export users!", nil)
	}

	if format != "csv" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Users exported successfully!", fiber.Map{
			"users": users,
		})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "email", "role", "status", "country", "created_at"})
	for _, u := range users {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Name,
			u.Email,
			u.Role,
			u.Status,
			u.Country,
			u.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	w.Flush()

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="users.csv"`)
	return c.SendString(buf.String())
}

// ExportCourses streams the course list as JSON or CSV
func (h *AdminController) ExportCourses(c *fiber.Ctx) error {
	format, _ := c.Locals("exportFormat").(string)

	var courses []models.Course
	if err := h.DB.Preload("Instructor").Preload("Category").
		Where("is_deleted = ?", false).Order("id asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export courses!", nil)
	}

	if format != "csv" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses exported successfully!", fiber.Map{
			"courses": courses,
		})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "title", "slug", "instructor", "category", "status", "price", "created_at"})
	for _, course := range courses {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(course.ID), 10),
			course.Title,
			course.Slug,
			course.Instructor.Name,
			course.Category.Name,
			course.Status,
			strconv.FormatFloat(course.Price, 'f', 2, 64),
			course.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	w.Flush()

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="courses.csv"`)
	return c.SendString(buf.String())
}
