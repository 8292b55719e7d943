package instructorRoutes

import (
	instructorController "lms/controllers/instructor"
	quizController "lms/controllers/quiz"
	"lms/middleware"
	"lms/models"
	instructorValidator "lms/validators/instructor"
	quizValidator "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupInstructorRoutes wires course, material and quiz authoring.
// Every route requires the instructor or admin role; per-course
// ownership is checked inside the controllers.
func SetupInstructorRoutes(app *fiber.App, db *gorm.DB) {
	handler := &instructorController.InstructorController{DB: db}
	quizHandler := &quizController.QuizController{DB: db}

	instructorGroup := app.Group("/api/instructor",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
	)

	instructorGroup.Get("/courses", handler.ListOwn)
	instructorGroup.Post("/courses", instructorValidator.CreateCourse(), handler.CreateCourse)
	instructorGroup.Put("/courses/:id", instructorValidator.UpdateCourse(), handler.UpdateCourse)
	instructorGroup.Get("/courses/:id/students", handler.Students)

	instructorGroup.Post("/courses/:id/materials", instructorValidator.CreateMaterial(), handler.CreateMaterial)
	instructorGroup.Put("/courses/:id/materials/:materialId", instructorValidator.UpdateMaterial(), handler.UpdateMaterial)
	instructorGroup.Delete("/courses/:id/materials/:materialId", handler.DeleteMaterial)

	instructorGroup.Post("/courses/:id/quizzes", quizValidator.CreateQuiz(), quizHandler.Create)
	instructorGroup.Post("/courses/:id/quizzes/:quizId/questions", quizValidator.AddQuestion(), quizHandler.AddQuestion)
	instructorGroup.Delete("/courses/:id/quizzes/:quizId", quizHandler.Delete)
}
