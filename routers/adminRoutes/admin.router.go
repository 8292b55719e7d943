package adminRoutes

import (
	adminController "lms/controllers/admin"
	"lms/middleware"
	"lms/models"
	adminValidator "lms/validators/admin"
	instructorValidator "lms/validators/instructor"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAdminRoutes wires the back-office surface plus the notification
// endpoints every logged-in user can read.
func SetupAdminRoutes(app *fiber.App, db *gorm.DB) {
	handler := &adminController.AdminController{DB: db}

	adminGroup := app.Group("/api/admin",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin),
	)

	adminGroup.Get("/users", handler.ListUsers)
	adminGroup.Get("/users/:id", handler.GetUser)
	adminGroup.Post("/users", adminValidator.CreateUser(), handler.CreateUser)
	adminGroup.Put("/users/:id", adminValidator.UpdateUser(), handler.UpdateUser)
	adminGroup.Delete("/users/:id", handler.DeleteUser)

	adminGroup.Get("/courses", handler.ListCourses)
	adminGroup.Put("/courses/:id", instructorValidator.UpdateCourse(), handler.UpdateCourse)
	adminGroup.Delete("/courses/:id", handler.DeleteCourse)

	adminGroup.Get("/statistics", handler.Statistics)
	adminGroup.Get("/analytics", handler.Analytics)

	adminGroup.Get("/export/users", adminValidator.Export(), handler.ExportUsers)
	adminGroup.Get("/export/courses", adminValidator.Export(), handler.ExportCourses)

	adminGroup.Post("/notifications", adminValidator.Broadcast(), handler.Broadcast)

	notificationGroup := app.Group("/api/notifications", middleware.JWTMiddleware)
	notificationGroup.Get("/", handler.MyNotifications)
	notificationGroup.Patch("/:id/read", handler.MarkNotificationRead)
}
