package quizValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateQuizRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	PassingScore float64 `json:"passing_score"`
	TimeLimit    int     `json:"time_limit_minutes"`
}

// CreateQuiz validates quiz creation
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.PassingScore < 0 || reqData.PassingScore > 100 {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}
		if reqData.TimeLimit < 0 {
			errors["time_limit_minutes"] = "Time limit cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

type QuestionRequest struct {
	QuestionText  string   `json:"question_text"`
	CorrectAnswer string   `json:"correct_answer"`
	Points        int      `json:"points"`
	OrderIndex    int      `json:"order_index"`
	Options       []string `json:"options"`
}

// AddQuestion validates a new quiz question with its options
func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuestionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.QuestionText) == "" {
			errors["question_text"] = "Question text is required!"
		}
		if strings.TrimSpace(reqData.CorrectAnswer) == "" {
			errors["correct_answer"] = "Correct answer is required!"
		}
		if reqData.Points < 1 {
			errors["points"] = "Points must be at least 1!"
		}
		if len(reqData.Options) > 0 && len(reqData.Options) < 2 {
			errors["options"] = "Provide at least two options for multiple choice!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers"` // question id -> submitted answer
}

// SubmitQuiz validates a quiz submission
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Answers == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "Answers are required!",
			})
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
