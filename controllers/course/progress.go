package courseController

import (
	"log"
	"time"

	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const completionThreshold = 80.0

// UpdateProgress records a video progress report. Watched duration and
// percentage merge via max so duplicate or out-of-order reports never
// regress; the watch counter increments on every call.
func (h *CourseController) UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*courseValidator.VideoProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Progress is written against the enrollment, so only enrolled students
	// can report it. Instructors previewing their own videos are not tracked.
	var enrollment models.Enrollment
	if err := h.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var material models.CourseMaterial
	if err := h.DB.Where("id = ? AND course_id = ? AND is_deleted = ?", reqData.MaterialID, courseID, false).
		First(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}
	if material.Type != models.MaterialVideo {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Material is not a video!", nil)
	}

	var progress models.VideoProgress
	err := h.DB.Where("user_id = ? AND material_id = ?", userID, reqData.MaterialID).First(&progress).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
		progress = models.VideoProgress{
			UserID:     userID,
			MaterialID: reqData.MaterialID,
		}
	}

	if reqData.WatchedSeconds > progress.WatchedSeconds {
		progress.WatchedSeconds = reqData.WatchedSeconds
	}
	if reqData.TotalSeconds > progress.TotalSeconds {
		progress.TotalSeconds = reqData.TotalSeconds
	}

	if progress.TotalSeconds > 0 {
		pct := float64(progress.WatchedSeconds) / float64(progress.TotalSeconds) * 100
		if pct > 100 {
			pct = 100
		}
		if pct > progress.Progress {
			progress.Progress = pct
		}
	}
	if progress.Progress >= completionThreshold {
		progress.Completed = true
	}
	progress.WatchCount++

	if err := h.DB.Save(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	// The video row is already saved; a failed rollup leaves the enrollment
	// percentage stale until the next report, so log it instead of failing
	// the request.
	if err := h.recomputeCourseProgress(userID, uint(courseID), &enrollment); err != nil {
		log.Printf("Failed to recompute course progress for user %d course %d: %v", userID, courseID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"video_progress": progress,
		"enrollment":     enrollment,
	})
}

// GetProgress returns per-material video progress plus the enrollment summary
func (h *CourseController) GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var enrollment models.Enrollment
	if err := h.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var progresses []models.VideoProgress
	if err := h.DB.Joins("JOIN course_materials ON course_materials.id = video_progresses.material_id").
		Where("video_progresses.user_id = ? AND course_materials.course_id = ?", userID, courseID).
		Find(&progresses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":     enrollment,
		"video_progress": progresses,
	})
}

// recomputeCourseProgress recalculates the enrollment's completion
// percentage as completed videos over all videos in the course.
func (h *CourseController) recomputeCourseProgress(userID, courseID uint, enrollment *models.Enrollment) error {
	var totalVideos int64
	if err := h.DB.Model(&models.CourseMaterial{}).
		Where("course_id = ? AND type = ? AND is_deleted = ?", courseID, models.MaterialVideo, false).
		Count(&totalVideos).Error; err != nil {
		return err
	}

	if totalVideos == 0 {
		return nil
	}

	var completedVideos int64
	if err := h.DB.Model(&models.VideoProgress{}).
		Joins("JOIN course_materials ON course_materials.id = video_progresses.material_id").
		Where("video_progresses.user_id = ? AND course_materials.course_id = ? AND video_progresses.completed = ?", userID, courseID, true).
		Count(&completedVideos).Error; err != nil {
		return err
	}

	pct := float64(completedVideos) / float64(totalVideos) * 100
	if pct > enrollment.Progress {
		enrollment.Progress = pct
	}

	if enrollment.Progress >= 100 {
		enrollment.Status = models.EnrollmentCompleted
		if enrollment.CompletedAt == nil {
			completedAt := time.Now()
			enrollment.CompletedAt = &completedAt
		}
	}

	return h.DB.Save(enrollment).Error
}
