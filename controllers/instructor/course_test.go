package instructorController_test

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
	instructorRoutes "lms/routers/instructorRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, models.Category) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4, UploadDir: t.TempDir()}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	category := models.Category{Name: "Programming"}
	require.NoError(t, db.Create(&category).Error)

	app := fiber.New()
	instructorRoutes.SetupInstructorRoutes(app, db)
	return app, db, category
}

func newInstructor(t *testing.T, db *gorm.DB, email string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Teacher", Email: email, Password: "x", Role: models.RoleInstructor}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role)
	require.NoError(t, err)
	return user, token
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestStudentsCannotUseInstructorRoutes(t *testing.T) {
	app, db, _ := setupApp(t)

	student := models.User{Name: "Student", Email: "student@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&student).Error)
	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Role)
	require.NoError(t, err)

	resp, _ := request(t, app, http.MethodGet, "/api/instructor/courses", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCrossInstructorUpdateForbidden(t *testing.T) {
	app, db, category := setupApp(t)
	owner, _ := newInstructor(t, db, "owner@example.com")
	_, intruderToken := newInstructor(t, db, "intruder@example.com")

	course := models.Course{InstructorID: owner.ID, CategoryID: category.ID, Title: "Go Basics", Slug: "go-basics"}
	require.NoError(t, db.Create(&course).Error)

	resp, _ := request(t, app, http.MethodPut, fmt.Sprintf("/api/instructor/courses/%d", course.ID), intruderToken, fiber.Map{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var reloaded models.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Equal(t, "Go Basics", reloaded.Title)
}

func TestCrossInstructorMaterialDeleteForbidden(t *testing.T) {
	app, db, category := setupApp(t)
	owner, _ := newInstructor(t, db, "owner2@example.com")
	_, intruderToken := newInstructor(t, db, "intruder2@example.com")

	course := models.Course{InstructorID: owner.ID, CategoryID: category.ID, Title: "Go Basics", Slug: "go-basics-2"}
	require.NoError(t, db.Create(&course).Error)
	material := models.CourseMaterial{CourseID: course.ID, Title: "Lesson", Type: models.MaterialOther}
	require.NoError(t, db.Create(&material).Error)

	resp, _ := request(t, app, http.MethodDelete,
		fmt.Sprintf("/api/instructor/courses/%d/materials/%d", course.ID, material.ID), intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var reloaded models.CourseMaterial
	require.NoError(t, db.First(&reloaded, material.ID).Error)
	assert.False(t, reloaded.IsDeleted)
}

func TestUpdateMissingCourseIsNotFound(t *testing.T) {
	app, db, _ := setupApp(t)
	_, token := newInstructor(t, db, "lonely@example.com")

	resp, _ := request(t, app, http.MethodPut, "/api/instructor/courses/9999", token, fiber.Map{"title": "Ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCourse(t *testing.T) {
	app, db, category := setupApp(t)
	instructor, token := newInstructor(t, db, "creator@example.com")

	resp, body := request(t, app, http.MethodPost, "/api/instructor/courses", token, fiber.Map{
		"title":       "Advanced Go",
		"category_id": category.ID,
		"description": "Concurrency and friends",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, models.CourseDraft, data["status"])
	assert.Equal(t, "advanced-go", data["slug"])
	assert.Equal(t, float64(instructor.ID), data["instructor_id"])

	// Same title derives the same slug, which must conflict
	resp, _ = request(t, app, http.MethodPost, "/api/instructor/courses", token, fiber.Map{
		"title":       "Advanced Go",
		"category_id": category.ID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestVideoMaterialRequiresFile(t *testing.T) {
	app, db, category := setupApp(t)
	owner, token := newInstructor(t, db, "filecheck@example.com")

	course := models.Course{InstructorID: owner.ID, CategoryID: category.ID, Title: "Go Basics", Slug: "go-basics-3"}
	require.NoError(t, db.Create(&course).Error)

	resp, _ := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/instructor/courses/%d/materials", course.ID), token, fiber.Map{
			"title": "Lesson video",
			"type":  models.MaterialVideo,
		})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCrossInstructorQuizCreateForbidden(t *testing.T) {
	app, db, category := setupApp(t)
	owner, _ := newInstructor(t, db, "quizowner@example.com")
	_, intruderToken := newInstructor(t, db, "quizintruder@example.com")

	course := models.Course{InstructorID: owner.ID, CategoryID: category.ID, Title: "Go Basics", Slug: "go-basics-4"}
	require.NoError(t, db.Create(&course).Error)

	resp, _ := request(t, app, http.MethodPost,
		fmt.Sprintf("/api/instructor/courses/%d/quizzes", course.ID), intruderToken, fiber.Map{
			"title":         "Trojan quiz",
			"passing_score": 50,
		})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var count int64
	db.Model(&models.Quiz{}).Where("course_id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCrossInstructorStudentListForbidden(t *testing.T) {
	app, db, category := setupApp(t)
	owner, _ := newInstructor(t, db, "rosterowner@example.com")
	_, intruderToken := newInstructor(t, db, "rosterintruder@example.com")

	course := models.Course{InstructorID: owner.ID, CategoryID: category.ID, Title: "Go Basics", Slug: "go-basics-5"}
	require.NoError(t, db.Create(&course).Error)

	resp, _ := request(t, app, http.MethodGet,
		fmt.Sprintf("/api/instructor/courses/%d/students", course.ID), intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
