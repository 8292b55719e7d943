package quizController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseRoutes "lms/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type quizFixture struct {
	app     *fiber.App
	db      *gorm.DB
	course  models.Course
	quiz    models.Quiz
	q1, q2  models.QuizQuestion
	student models.User
	token   string
}

func setupQuizFixture(t *testing.T) *quizFixture {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4, UploadDir: t.TempDir()}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	instructor := models.User{Name: "Teacher", Email: "teacher@example.com", Password: "x", Role: models.RoleInstructor}
	require.NoError(t, db.Create(&instructor).Error)
	category := models.Category{Name: "Programming"}
	require.NoError(t, db.Create(&category).Error)
	course := models.Course{InstructorID: instructor.ID, CategoryID: category.ID, Title: "Go Basics", Slug: "go-basics", Status: models.CoursePublished}
	require.NoError(t, db.Create(&course).Error)

	quiz := models.Quiz{CourseID: course.ID, Title: "Syntax Check", PassingScore: 50}
	require.NoError(t, db.Create(&quiz).Error)
	q1 := models.QuizQuestion{QuizID: quiz.ID, QuestionText: "Keyword to declare a function?", CorrectAnswer: "func", Points: 10, OrderIndex: 1}
	require.NoError(t, db.Create(&q1).Error)
	q2 := models.QuizQuestion{QuizID: quiz.ID, QuestionText: "Zero value of a pointer?", CorrectAnswer: "nil", Points: 10, OrderIndex: 2}
	require.NoError(t, db.Create(&q2).Error)
	for _, opt := range []string{"func", "def", "fn"} {
		require.NoError(t, db.Create(&models.QuizOption{QuestionID: q1.ID, OptionText: opt}).Error)
	}

	student := models.User{Name: "Student", Email: "student@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&student).Error)
	require.NoError(t, db.Create(&models.Enrollment{UserID: student.ID, CourseID: course.ID}).Error)
	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Role)
	require.NoError(t, err)

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app, db)

	return &quizFixture{app: app, db: db, course: course, quiz: quiz, q1: q1, q2: q2, student: student, token: token}
}

func (f *quizFixture) submitURL() string {
	return fmt.Sprintf("/api/courses/%d/quizzes/%d/submit", f.course.ID, f.quiz.ID)
}

func (f *quizFixture) submit(t *testing.T, token string, answers map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(fiber.Map{"answers": answers})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, f.submitURL(), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp, parsed
}

func TestSubmitScoresAnsweredQuestionsOnly(t *testing.T) {
	f := setupQuizFixture(t)

	// One right answer, one left blank. Half the points earns a pass at 50.
	resp, body := f.submit(t, f.token, map[string]string{
		fmt.Sprint(f.q1.ID): "func",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	attempt := data["attempt"].(map[string]interface{})
	assert.Equal(t, float64(10), attempt["score"])
	assert.Equal(t, float64(20), attempt["total_points"])
	assert.InDelta(t, 50.0, attempt["percentage"].(float64), 0.01)
	assert.Equal(t, true, attempt["passed"])
	assert.Equal(t, float64(1), data["correct"])
	assert.Equal(t, float64(0), data["wrong"])
	assert.Equal(t, float64(1), data["unanswered"])
}

func TestSubmitAllWrongFails(t *testing.T) {
	f := setupQuizFixture(t)

	resp, body := f.submit(t, f.token, map[string]string{
		fmt.Sprint(f.q1.ID): "def",
		fmt.Sprint(f.q2.ID): "zero",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	attempt := data["attempt"].(map[string]interface{})
	assert.Equal(t, float64(0), attempt["score"])
	assert.Equal(t, false, attempt["passed"])
	assert.Equal(t, float64(2), data["wrong"])
}

func TestAttemptNumbersIncrement(t *testing.T) {
	f := setupQuizFixture(t)

	for want := 1; want <= 3; want++ {
		resp, body := f.submit(t, f.token, map[string]string{fmt.Sprint(f.q1.ID): "func"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		attempt := body["data"].(map[string]interface{})["attempt"].(map[string]interface{})
		assert.Equal(t, float64(want), attempt["attempt_number"])
	}
}

func TestSubmitRequiresEnrollment(t *testing.T) {
	f := setupQuizFixture(t)

	outsider := models.User{Name: "Outsider", Email: "outsider@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, f.db.Create(&outsider).Error)
	token, err := middleware.GenerateJWT(outsider.ID, outsider.Name, outsider.Role)
	require.NoError(t, err)

	resp, _ := f.submit(t, token, map[string]string{fmt.Sprint(f.q1.ID): "func"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestQuizNeverLeaksCorrectAnswers(t *testing.T) {
	f := setupQuizFixture(t)

	url := fmt.Sprintf("/api/courses/%d/quizzes/%d", f.course.ID, f.quiz.ID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+f.token)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// "nil" is the second answer and never an option, so it must not appear
	raw, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(raw), "correct_answer")
	assert.NotContains(t, string(raw), `"nil"`)
}
