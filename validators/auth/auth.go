package authValidator

import (
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type RegisterRequest struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	Role        string `json:"role" form:"role"`
	Bio         string `json:"bio" form:"bio"`
	Phone       string `json:"phone" form:"phone"`
	DateOfBirth string `json:"date_of_birth" form:"date_of_birth"`
	Gender      string `json:"gender" form:"gender"`
	Country     string `json:"country" form:"country"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "Invalid email!"
		}

		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		// Admin accounts are not self-registrable
		switch reqData.Role {
		case models.RoleStudent, models.RoleInstructor, models.RoleParent:
		case "":
			reqData.Role = models.RoleStudent
		default:
			errors["role"] = "Role must be one of student, instructor or parent!"
		}

		if reqData.DateOfBirth != "" {
			if err := validate.Var(reqData.DateOfBirth, "datetime=2006-01-02"); err != nil {
				errors["date_of_birth"] = "Date of birth must be in YYYY-MM-DD format!"
			}
		}

		if reqData.Gender != "" && reqData.Gender != "male" && reqData.Gender != "female" && reqData.Gender != "other" {
			errors["gender"] = "Gender must be one of male, female or other!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "Invalid email!"
		}

		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

type UpdateProfileRequest struct {
	Name        string `json:"name" form:"name"`
	Bio         string `json:"bio" form:"bio"`
	Phone       string `json:"phone" form:"phone"`
	DateOfBirth string `json:"date_of_birth" form:"date_of_birth"`
	Gender      string `json:"gender" form:"gender"`
	Country     string `json:"country" form:"country"`
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != "" && len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if reqData.DateOfBirth != "" {
			if err := validate.Var(reqData.DateOfBirth, "datetime=2006-01-02"); err != nil {
				errors["date_of_birth"] = "Date of birth must be in YYYY-MM-DD format!"
			}
		}

		if reqData.Gender != "" && reqData.Gender != "male" && reqData.Gender != "female" && reqData.Gender != "other" {
			errors["gender"] = "Gender must be one of male, female or other!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
