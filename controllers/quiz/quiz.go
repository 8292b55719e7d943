package quizController

import (
	"encoding/json"
	"strconv"

	"lms/middleware"
	"lms/models"
	quizValidator "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type QuizController struct {
	DB *gorm.DB
}

// List returns the quizzes of a course. Member gate runs before this.
func (h *QuizController) List(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var quizzes []models.Quiz
	if err := h.DB.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at asc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", fiber.Map{
		"quizzes": quizzes,
	})
}

// Get returns one quiz with its questions and options. Correct answers are
// never serialized into the response.
func (h *QuizController) Get(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	quizID, err := c.ParamsInt("quizId")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var quiz models.Quiz
	if err := h.DB.Where("id = ? AND course_id = ? AND is_deleted = ?", quizID, courseID, false).
		First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []models.QuizQuestion
	if err := h.DB.Where("quiz_id = ? AND is_deleted = ?", quizID, false).
		Order("order_index asc, created_at asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	type questionItem struct {
		models.QuizQuestion
		Options []models.QuizOption `json:"options"`
	}

	items := make([]questionItem, len(questions))
	for i, q := range questions {
		var options []models.QuizOption
		h.DB.Where("question_id = ? AND is_deleted = ?", q.ID, false).
			Order("order_index asc").Find(&options)
		items[i] = questionItem{QuizQuestion: q, Options: options}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":      quiz,
		"questions": items,
	})
}

// Submit scores a quiz attempt. Points are earned only on an exact string
// match with the stored answer; unanswered questions are reported apart from
// wrong ones. The attempt number is read as max+1 before the insert.
func (h *QuizController) Submit(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	quizID, err := c.ParamsInt("quizId")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*quizValidator.SubmitQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var enrollment models.Enrollment
	if err := h.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var quiz models.Quiz
	if err := h.DB.Where("id = ? AND course_id = ? AND is_deleted = ?", quizID, courseID, false).
		First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []models.QuizQuestion
	if err := h.DB.Where("quiz_id = ? AND is_deleted = ?", quizID, false).Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}
	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz has no questions!", nil)
	}

	score := 0
	totalPoints := 0
	correctCount := 0
	wrongCount := 0
	unansweredCount := 0

	for _, q := range questions {
		totalPoints += q.Points
		answer, answered := reqData.Answers[strconv.FormatUint(uint64(q.ID), 10)]
		if !answered || answer == "" {
			unansweredCount++
			continue
		}
		if answer == q.CorrectAnswer {
			score += q.Points
			correctCount++
		} else {
			wrongCount++
		}
	}

	percentage := float64(0)
	if totalPoints > 0 {
		percentage = float64(score) / float64(totalPoints) * 100
	}
	passed := percentage >= quiz.PassingScore

	// Read-then-insert: concurrent submissions by the same user can compute
	// the same attempt number. Kept as-is.
	var maxAttempt int
	h.DB.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Select("COALESCE(MAX(attempt_number), 0)").Scan(&maxAttempt)

	answersJSON, _ := json.Marshal(reqData.Answers)

	attempt := models.QuizAttempt{
		UserID:        userID,
		QuizID:        uint(quizID),
		Answers:       string(answersJSON),
		Score:         score,
		TotalPoints:   totalPoints,
		Percentage:    percentage,
		Passed:        passed,
		AttemptNumber: maxAttempt + 1,
	}

	if err := h.DB.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz submitted!", fiber.Map{
		"attempt":    attempt,
		"correct":    correctCount,
		"wrong":      wrongCount,
		"unanswered": unansweredCount,
	})
}

// MyAttempts lists the caller's attempts for one quiz, newest first
func (h *QuizController) MyAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID, err := c.ParamsInt("quizId")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	var attempts []models.QuizAttempt
	if err := h.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("attempt_number desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"attempts": attempts,
	})
}
