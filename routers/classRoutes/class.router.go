package classRoutes

import (
	onlineClassController "lms/controllers/onlineclass"
	"lms/middleware"
	"lms/models"
	onlineClassValidator "lms/validators/onlineclass"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupClassRoutes(app *fiber.App, db *gorm.DB) {
	handler := &onlineClassController.OnlineClassController{DB: db}

	classGroup := app.Group("/api/online-classes", middleware.JWTMiddleware)

	hosts := middleware.RequireRole(models.RoleInstructor, models.RoleAdmin)
	classGroup.Post("/", hosts, onlineClassValidator.ScheduleClass(), handler.Schedule)
	classGroup.Get("/", hosts, handler.ListOwn)
	classGroup.Put("/:id", hosts, onlineClassValidator.UpdateClass(), handler.Update)
	classGroup.Patch("/:id/status", hosts, onlineClassValidator.UpdateStatus(), handler.UpdateStatus)
	classGroup.Delete("/:id", hosts, handler.Delete)

	classGroup.Post("/:id/join", handler.Join)
	classGroup.Post("/:id/leave", handler.Leave)
}
