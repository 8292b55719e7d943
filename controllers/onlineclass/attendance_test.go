package onlineClassController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	classRoutes "lms/routers/classRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type classFixture struct {
	app   *fiber.App
	db    *gorm.DB
	class models.OnlineClass
}

func setupClassFixture(t *testing.T, maxParticipants int) *classFixture {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4, MeetingBaseURL: "https://meet.example.com", UploadDir: t.TempDir()}

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

	class := models.OnlineClass{
		CourseID:        course.ID,
		InstructorID:    instructor.ID,
		Title:           "Live Q&A",
		ScheduledDate:   time.Now().Add(time.Hour),
		DurationMinutes: 60,
		MeetingRoomName: "course-1-abc123",
		MaxParticipants: maxParticipants,
		Status:          models.ClassScheduled,
	}
	require.NoError(t, db.Create(&class).Error)

	app := fiber.New()
	classRoutes.SetupClassRoutes(app, db)
	return &classFixture{app: app, db: db, class: class}
}

func (f *classFixture) newAttendee(t *testing.T, email string, enrolled bool) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Student", Email: email, Password: "x", Role: models.RoleStudent}
	require.NoError(t, f.db.Create(&user).Error)
	if enrolled {
		require.NoError(t, f.db.Create(&models.Enrollment{UserID: user.ID, CourseID: f.class.CourseID}).Error)
	}
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role)
	require.NoError(t, err)
	return user, token
}

func (f *classFixture) post(t *testing.T, action, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	url := fmt.Sprintf("/api/online-classes/%d/%s", f.class.ID, action)
	req := httptest.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestJoinLeaveRejoinReusesOneRow(t *testing.T) {
	f := setupClassFixture(t, 50)
	student, token := f.newAttendee(t, "attendee@example.com", true)

	resp, body := f.post(t, "join", token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "https://meet.example.com/course-1-abc123", data["meeting_url"])

	// Joining twice without leaving is a conflict
	resp, _ = f.post(t, "join", token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = f.post(t, "leave", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = f.post(t, "join", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	f.db.Model(&models.ClassAttendance{}).
		Where("online_class_id = ? AND user_id = ?", f.class.ID, student.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	var attendance models.ClassAttendance
	require.NoError(t, f.db.Where("online_class_id = ? AND user_id = ?", f.class.ID, student.ID).First(&attendance).Error)
	assert.Equal(t, models.AttendanceJoined, attendance.Status)
	assert.Nil(t, attendance.LeftAt)
}

func TestJoinRequiresEnrollment(t *testing.T) {
	f := setupClassFixture(t, 50)
	_, token := f.newAttendee(t, "outsider@example.com", false)

	resp, _ := f.post(t, "join", token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestJoinRejectsFullClass(t *testing.T) {
	f := setupClassFixture(t, 1)
	_, first := f.newAttendee(t, "first@example.com", true)
	_, second := f.newAttendee(t, "second@example.com", true)

	resp, _ := f.post(t, "join", first)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := f.post(t, "join", second)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Class is full!", body["message"])
}

func TestCannotJoinCancelledClass(t *testing.T) {
	f := setupClassFixture(t, 50)
	_, token := f.newAttendee(t, "late@example.com", true)

	require.NoError(t, f.db.Model(&f.class).Update("status", models.ClassCancelled).Error)

	resp, _ := f.post(t, "join", token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLeavingFreesASeat(t *testing.T) {
	f := setupClassFixture(t, 1)
	_, first := f.newAttendee(t, "early@example.com", true)
	_, second := f.newAttendee(t, "waiting@example.com", true)

	resp, _ := f.post(t, "join", first)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = f.post(t, "join", second)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = f.post(t, "leave", first)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = f.post(t, "join", second)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
