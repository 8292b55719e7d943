package utils

import (
	"testing"
	"time"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSweepDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.OnlineClass{}, &models.ClassAttendance{}))
	return db
}

func seedClass(t *testing.T, db *gorm.DB, status string, scheduled time.Time, duration int) models.OnlineClass {
	t.Helper()

	class := models.OnlineClass{
		CourseID:        1,
		InstructorID:    1,
		Title:           "Sweep target",
		ScheduledDate:   scheduled,
		DurationMinutes: duration,
		MeetingRoomName: "room",
		Status:          status,
	}
	require.NoError(t, db.Create(&class).Error)
	return class
}

func TestSweepCompletesPastClasses(t *testing.T) {
	db := openSweepDB(t)

	past := seedClass(t, db, models.ClassScheduled, time.Now().Add(-2*time.Hour), 60)
	running := seedClass(t, db, models.ClassActive, time.Now().Add(-30*time.Minute), 60)
	upcoming := seedClass(t, db, models.ClassScheduled, time.Now().Add(time.Hour), 60)
	cancelled := seedClass(t, db, models.ClassCancelled, time.Now().Add(-2*time.Hour), 60)

	sweepOnlineClasses(db)

	statuses := map[uint]string{}
	var classes []models.OnlineClass
	require.NoError(t, db.Find(&classes).Error)
	for _, c := range classes {
		statuses[c.ID] = c.Status
	}

	assert.Equal(t, models.ClassCompleted, statuses[past.ID])
	assert.Equal(t, models.ClassActive, statuses[running.ID], "a class still inside its window stays active")
	assert.Equal(t, models.ClassScheduled, statuses[upcoming.ID])
	assert.Equal(t, models.ClassCancelled, statuses[cancelled.ID])
}
