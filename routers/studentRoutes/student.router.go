package studentRoutes

import (
	studentController "lms/controllers/student"
	"lms/middleware"
	"lms/models"
	studentValidator "lms/validators/student"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStudentRoutes(app *fiber.App, db *gorm.DB) {
	handler := &studentController.StudentController{DB: db}

	studentGroup := app.Group("/api/student",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleStudent),
	)

	studentGroup.Post("/enroll", studentValidator.Enroll(), handler.Enroll)
	studentGroup.Get("/courses", handler.MyCourses)
	studentGroup.Get("/classes", handler.MyClasses)
}
