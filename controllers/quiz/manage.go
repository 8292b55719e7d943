package quizController

import (
	"lms/middleware"
	"lms/models"
	quizValidator "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// ownCourse loads a course and checks the caller teaches it. On failure the
// 404/403 response is already written and callers must stop.
func (h *QuizController) ownCourse(c *fiber.Ctx, courseID int) (*models.Course, bool) {
	userID, _ := c.Locals("userId").(uint)

	var course models.Course
	if err := h.DB.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		_ = middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		return nil, false
	}
	if course.InstructorID != userID {
		_ = middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
		return nil, false
	}
	return &course, true
}

// Create adds a quiz to one of the instructor's own courses
func (h *QuizController) Create(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if _, ok := h.ownCourse(c, courseID); !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedQuiz").(*quizValidator.CreateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := models.Quiz{
		CourseID:     uint(courseID),
		Title:        reqData.Title,
		Description:  reqData.Description,
		PassingScore: reqData.PassingScore,
		TimeLimit:    reqData.TimeLimit,
	}

	if err := h.DB.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AddQuestion adds a question with its options to a quiz
func (h *QuizController) AddQuestion(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	quizID, err := c.ParamsInt("quizId")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	if _, ok := h.ownCourse(c, courseID); !ok {
		return nil
	}

	var quiz models.Quiz
	if err := h.DB.Where("id = ? AND course_id = ? AND is_deleted = ?", quizID, courseID, false).
		First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*quizValidator.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question := models.QuizQuestion{
		QuizID:        uint(quizID),
		QuestionText:  reqData.QuestionText,
		CorrectAnswer: reqData.CorrectAnswer,
		Points:        reqData.Points,
		OrderIndex:    reqData.OrderIndex,
	}

	tx := h.DB.Begin()
	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}
	for i, optionText := range reqData.Options {
		option := models.QuizOption{
			QuestionID: question.ID,
			OptionText: optionText,
			OrderIndex: i,
		}
		if err := tx.Create(&option).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question options!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", question)
}

// Delete removes a quiz from one of the instructor's own courses
func (h *QuizController) Delete(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	quizID, err := c.ParamsInt("quizId")
	if err != nil || quizID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
	}

	if _, ok := h.ownCourse(c, courseID); !ok {
		return nil
	}

	var quiz models.Quiz
	if err := h.DB.Where("id = ? AND course_id = ? AND is_deleted = ?", quizID, courseID, false).
		First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	quiz.IsDeleted = true
	if err := h.DB.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}
