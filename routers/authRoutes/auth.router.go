package authRoutes

import (
	authController "lms/controllers/auth"
	"lms/middleware"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	handler := &authController.AuthController{DB: db}

	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), handler.Register)
	authGroup.Post("/login", authValidator.Login(), handler.Login)
	authGroup.Get("/verify-email", handler.VerifyEmail)
	authGroup.Get("/profile", middleware.JWTMiddleware, handler.GetProfile)
	authGroup.Put("/profile", middleware.JWTMiddleware, authValidator.UpdateProfile(), handler.UpdateProfile)
}
