package main

import (
	"log"

	"lms/config"
	"lms/database"
	adminRoutes "lms/routers/adminRoutes"
	authRoutes "lms/routers/authRoutes"
	categoryRoutes "lms/routers/categoryRoutes"
	classRoutes "lms/routers/classRoutes"
	courseRoutes "lms/routers/courseRoutes"
	instructorRoutes "lms/routers/instructorRoutes"
	studentRoutes "lms/routers/studentRoutes"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	db := database.Connect()

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Static("/uploads", config.AppConfig.UploadDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": true, "message": "Welcome to the LMS API!"})
	})

	authRoutes.SetupAuthRoutes(app, db)
	categoryRoutes.SetupCategoryRoutes(app, db)
	courseRoutes.SetupCourseRoutes(app, db)
	instructorRoutes.SetupInstructorRoutes(app, db)
	studentRoutes.SetupStudentRoutes(app, db)
	classRoutes.SetupClassRoutes(app, db)
	adminRoutes.SetupAdminRoutes(app, db)

	scheduler := utils.StartClassScheduler(db)
	defer scheduler.Stop()

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
