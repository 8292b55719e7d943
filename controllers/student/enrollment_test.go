package studentController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	studentRoutes "lms/routers/studentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4, UploadDir: t.TempDir()}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	studentRoutes.SetupStudentRoutes(app, db)
	return app, db
}

func seedCourse(t *testing.T, db *gorm.DB, status string) (models.Course, models.User) {
	t.Helper()

	instructor := models.User{Name: "Teacher", Email: "teacher-" + status + "@example.com", Password: "x", Role: models.RoleInstructor}
	require.NoError(t, db.Create(&instructor).Error)
	category := models.Category{Name: "Programming " + status}
	require.NoError(t, db.Create(&category).Error)

	course := models.Course{
		InstructorID: instructor.ID,
		CategoryID:   category.ID,
		Title:        "Go Basics",
		Slug:         "go-basics-" + status,
		Status:       status,
	}
	require.NoError(t, db.Create(&course).Error)
	return course, instructor
}

func seedStudent(t *testing.T, db *gorm.DB, email string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Student", Email: email, Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role)
	require.NoError(t, err)
	return user, token
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	rawBody, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(rawBody, &parsed))
	return resp, parsed
}

func TestEnrollOnceThenConflict(t *testing.T) {
	app, db := setupApp(t)
	course, _ := seedCourse(t, db, models.CoursePublished)
	_, token := seedStudent(t, db, "enroll@example.com")

	resp, _ := postJSON(t, app, "/api/student/enroll", token, fiber.Map{"course_id": course.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, app, "/api/student/enroll", token, fiber.Map{"course_id": course.ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, body["status"])

	var count int64
	db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCannotEnrollInUnpublishedCourse(t *testing.T) {
	app, db := setupApp(t)
	course, _ := seedCourse(t, db, models.CourseDraft)
	_, token := seedStudent(t, db, "draft@example.com")

	resp, _ := postJSON(t, app, "/api/student/enroll", token, fiber.Map{"course_id": course.ID})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMyCoursesListsEnrollments(t *testing.T) {
	app, db := setupApp(t)
	course, _ := seedCourse(t, db, models.CoursePublished)
	student, token := seedStudent(t, db, "list@example.com")

	require.NoError(t, db.Create(&models.Enrollment{UserID: student.ID, CourseID: course.ID}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/student/courses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &parsed))

	data := parsed["data"].(map[string]interface{})
	enrollments := data["enrollments"].([]interface{})
	require.Len(t, enrollments, 1)
	first := enrollments[0].(map[string]interface{})
	assert.Equal(t, "Go Basics", first["course_title"])
}
