package adminValidator

import (
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
}

func validRole(role string) bool {
	switch role {
	case models.RoleStudent, models.RoleInstructor, models.RoleParent, models.RoleAdmin:
		return true
	}
	return false
}

func validStatus(status string) bool {
	switch status {
	case models.UserActive, models.UserInactive, models.UserDeleted:
		return true
	}
	return false
}

// CreateUser validates an admin-created user of any role
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UserRequest)
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
		if reqData.Role == "" || !validRole(reqData.Role) {
			errors["role"] = "Role must be one of student, instructor, parent or admin!"
		}
		if reqData.Status != "" && !validStatus(reqData.Status) {
			errors["status"] = "Status must be one of active, inactive or deleted!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// UpdateUser validates an admin user update; all fields optional
func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != "" && len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}
		if reqData.Email != "" {
			if err := validate.Var(reqData.Email, "email"); err != nil {
				errors["email"] = "Invalid email!"
			}
		}
		if reqData.Password != "" && len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}
		if reqData.Role != "" && !validRole(reqData.Role) {
			errors["role"] = "Role must be one of student, instructor, parent or admin!"
		}
		if reqData.Status != "" && !validStatus(reqData.Status) {
			errors["status"] = "Status must be one of active, inactive or deleted!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

type BroadcastRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Role    string `json:"role"` // empty means all active users
}

// Broadcast validates an admin notification broadcast
func Broadcast() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BroadcastRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}
		if reqData.Role != "" && !validRole(reqData.Role) {
			errors["role"] = "Role must be one of student, instructor, parent or admin!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBroadcast", reqData)
		return c.Next()
	}
}

type CategoryRequest struct {
	Name string `json:"name"`
}

// Category validates a category create/update
func Category() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CategoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"name": "Name must be at least 2 characters long!",
			})
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

// Export validates the export format query parameter
func Export() fiber.Handler {
	return func(c *fiber.Ctx) error {
		format := c.Query("format", "json")
		if format != "json" && format != "csv" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"format": "Format must be json or csv!",
			})
		}
		c.Locals("exportFormat", format)
		return c.Next()
	}
}
