package courseRoutes

import (
	courseController "lms/controllers/course"
	quizController "lms/controllers/quiz"
	"lms/middleware"
	courseValidator "lms/validators/course"
	quizValidator "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes wires the learner-facing catalog, materials, chat,
// video progress and quiz routes.
func SetupCourseRoutes(app *fiber.App, db *gorm.DB) {
	handler := &courseController.CourseController{DB: db}
	quizHandler := &quizController.QuizController{DB: db}

	courseGroup := app.Group("/api/courses")

	// Public catalog. Details decodes a token when one is sent so owners can
	// see their own drafts.
	courseGroup.Get("/", courseValidator.List(), handler.List)
	courseGroup.Get("/:id", middleware.OptionalJWT, handler.Details)

	// Materials need a login; previews are filtered inside the controller
	courseGroup.Get("/:id/materials", middleware.JWTMiddleware, handler.Materials)

	// Member-gated surfaces
	member := middleware.IsCourseMember(db)
	courseGroup.Get("/:id/classes", middleware.JWTMiddleware, member, handler.Classes)
	courseGroup.Get("/:id/chat", middleware.JWTMiddleware, member, handler.GetChat)
	courseGroup.Post("/:id/chat", middleware.JWTMiddleware, member, courseValidator.PostChatMessage(), handler.PostChat)
	courseGroup.Post("/:id/progress", middleware.JWTMiddleware, member, courseValidator.UpdateVideoProgress(), handler.UpdateProgress)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, member, handler.GetProgress)

	// Quizzes
	courseGroup.Get("/:id/quizzes", middleware.JWTMiddleware, member, quizHandler.List)
	courseGroup.Get("/:id/quizzes/:quizId", middleware.JWTMiddleware, member, quizHandler.Get)
	courseGroup.Post("/:id/quizzes/:quizId/submit", middleware.JWTMiddleware, member, quizValidator.SubmitQuiz(), quizHandler.Submit)
	courseGroup.Get("/:id/quizzes/:quizId/attempts", middleware.JWTMiddleware, member, quizHandler.MyAttempts)
}
