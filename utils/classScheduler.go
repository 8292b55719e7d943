package utils

import (
	"fmt"
	"log"
	"time"

	"lms/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func logScheduler(message string) {
	log.Printf("[CLASS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sweepOnlineClasses marks scheduled or active classes whose time window has
// fully passed as completed. Cancelled classes are left alone.
func sweepOnlineClasses(db *gorm.DB) {
	currentTime := time.Now()

	var classes []models.OnlineClass
	if err := db.Where("status IN ? AND is_deleted = ?", []string{models.ClassScheduled, models.ClassActive}, false).
		Find(&classes).Error; err != nil {
		logScheduler("Error fetching classes: " + err.Error())
		return
	}

	for _, class := range classes {
		endTime := class.ScheduledDate.Add(time.Duration(class.DurationMinutes) * time.Minute)
		if endTime.After(currentTime) {
			continue
		}

		class.Status = models.ClassCompleted
		if err := db.Save(&class).Error; err != nil {
			logScheduler(fmt.Sprintf("Error completing class %d: %v", class.ID, err))
			continue
		}
		logScheduler(fmt.Sprintf("Class %d (%s) marked completed", class.ID, class.Title))
	}
}

// sweepStaleAttendance closes attendance rows still marked joined for classes
// that ended before today.
func sweepStaleAttendance(db *gorm.DB) {
	startOfDay := now.BeginningOfDay()

	var attendances []models.ClassAttendance
	if err := db.Joins("JOIN online_classes ON online_classes.id = class_attendances.online_class_id").
		Where("class_attendances.status = ? AND online_classes.scheduled_date < ?", models.AttendanceJoined, startOfDay).
		Find(&attendances).Error; err != nil {
		logScheduler("Error fetching stale attendance: " + err.Error())
		return
	}

	for _, att := range attendances {
		leftAt := time.Now()
		att.LeftAt = &leftAt
		att.Status = models.AttendanceLeft
		if err := db.Save(&att).Error; err != nil {
			logScheduler(fmt.Sprintf("Error closing attendance %d: %v", att.ID, err))
		}
	}
}

// StartClassScheduler runs the online-class status sweep every five minutes
// and the stale-attendance sweep once a day.
func StartClassScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("*/5 * * * *", func() { sweepOnlineClasses(db) }); err != nil {
		log.Fatalf("Failed to schedule class sweep: %v", err)
	}
	if _, err := c.AddFunc("30 0 * * *", func() { sweepStaleAttendance(db) }); err != nil {
		log.Fatalf("Failed to schedule attendance sweep: %v", err)
	}

	c.Start()
	logScheduler("Scheduler started")
	return c
}
