package courseController_test

import (
	"net/http"
	"testing"

	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoProgressNeverRegresses(t *testing.T) {
	f := setupFixture(t)
	student, token := f.newStudent(t, "watcher@example.com", true)

	resp, _ := f.request(t, http.MethodPost, courseURL(f, "/progress"), token, fiber.Map{
		"material_id":              f.video.ID,
		"watched_duration_seconds": 30,
		"total_duration_seconds":   100,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// A stale report with a lower watermark must not shrink anything.
	resp, _ = f.request(t, http.MethodPost, courseURL(f, "/progress"), token, fiber.Map{
		"material_id":              f.video.ID,
		"watched_duration_seconds": 10,
		"total_duration_seconds":   100,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var progress models.VideoProgress
	require.NoError(t, f.db.Where("user_id = ? AND material_id = ?", student.ID, f.video.ID).First(&progress).Error)
	assert.Equal(t, 30, progress.WatchedSeconds)
	assert.InDelta(t, 30.0, progress.Progress, 0.01)
	assert.False(t, progress.Completed)
	assert.Equal(t, 2, progress.WatchCount)
}

func TestVideoCompletesAtThreshold(t *testing.T) {
	f := setupFixture(t)
	student, token := f.newStudent(t, "finisher@example.com", true)

	resp, _ := f.request(t, http.MethodPost, courseURL(f, "/progress"), token, fiber.Map{
		"material_id":              f.video.ID,
		"watched_duration_seconds": 79,
		"total_duration_seconds":   100,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var progress models.VideoProgress
	require.NoError(t, f.db.Where("user_id = ? AND material_id = ?", student.ID, f.video.ID).First(&progress).Error)
	assert.False(t, progress.Completed)

	resp, _ = f.request(t, http.MethodPost, courseURL(f, "/progress"), token, fiber.Map{
		"material_id":              f.video.ID,
		"watched_duration_seconds": 80,
		"total_duration_seconds":   100,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, f.db.Where("user_id = ? AND material_id = ?", student.ID, f.video.ID).First(&progress).Error)
	assert.True(t, progress.Completed)
}

func TestCourseCompletesWhenAllVideosDo(t *testing.T) {
	f := setupFixture(t)
	student, token := f.newStudent(t, "grad@example.com", true)

	for _, material := range []models.CourseMaterial{f.preview, f.video} {
		resp, _ := f.request(t, http.MethodPost, courseURL(f, "/progress"), token, fiber.Map{
			"material_id":              material.ID,
			"watched_duration_seconds": 95,
			"total_duration_seconds":   100,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var enrollment models.Enrollment
	require.NoError(t, f.db.Where("user_id = ? AND course_id = ?", student.ID, f.course.ID).First(&enrollment).Error)
	assert.InDelta(t, 100.0, enrollment.Progress, 0.01)
	assert.Equal(t, models.EnrollmentCompleted, enrollment.Status)
	assert.NotNil(t, enrollment.CompletedAt)
}

func TestProgressRejectedForNonVideoMaterial(t *testing.T) {
	f := setupFixture(t)
	_, token := f.newStudent(t, "reader@example.com", true)

	doc := models.CourseMaterial{CourseID: f.course.ID, Title: "Notes", Type: models.MaterialDocument, FilePath: "notes.pdf"}
	require.NoError(t, f.db.Create(&doc).Error)

	resp, _ := f.request(t, http.MethodPost, courseURL(f, "/progress"), token, fiber.Map{
		"material_id":              doc.ID,
		"watched_duration_seconds": 10,
		"total_duration_seconds":   100,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProgressRequiresEnrollment(t *testing.T) {
	f := setupFixture(t)
	_, token := f.newStudent(t, "lurker@example.com", false)

	resp, _ := f.request(t, http.MethodPost, courseURL(f, "/progress"), token, fiber.Map{
		"material_id":              f.video.ID,
		"watched_duration_seconds": 10,
		"total_duration_seconds":   100,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
