package categoryRoutes

import (
	categoryController "lms/controllers/category"
	"lms/middleware"
	"lms/models"
	adminValidator "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCategoryRoutes(app *fiber.App, db *gorm.DB) {
	handler := &categoryController.CategoryController{DB: db}

	categoryGroup := app.Group("/api/categories")

	categoryGroup.Get("/", handler.List)
	categoryGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), adminValidator.Category(), handler.Create)
	categoryGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), adminValidator.Category(), handler.Update)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), handler.Delete)
}
