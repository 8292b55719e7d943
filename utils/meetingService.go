package utils

import (
	"log"
	"time"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// MeetingURL resolves the join URL for a room. Conferencing itself is
// delegated to the external provider; locally a room is just a name.
func MeetingURL(roomName string) string {
	return config.AppConfig.MeetingBaseURL + "/" + roomName
}

// RegisterMeetingRoom notifies the meeting provider about an upcoming room so
// it can pre-provision it. Providers without a management API work fine with
// just the URL template, so this is best-effort: callers run it in a
// goroutine and errors are only logged.
func RegisterMeetingRoom(roomName string, scheduledDate time.Time, durationMinutes, maxParticipants int) {
	if config.AppConfig.MeetingAPIKey == "" {
		return
	}

	client := resty.New().
		SetBaseURL(config.AppConfig.MeetingBaseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Authorization", "Bearer "+config.AppConfig.MeetingAPIKey)

	resp, err := client.R().
		SetBody(map[string]interface{}{
			"room_name":        roomName,
			"scheduled_date":   scheduledDate.Format(time.RFC3339),
			"duration_minutes": durationMinutes,
			"max_participants": maxParticipants,
		}).
		Post("/api/rooms")

	if err != nil {
		log.Printf("Error registering meeting room %s: %v", roomName, err)
		return
	}
	if resp.IsError() {
		log.Printf("Meeting provider rejected room %s: %s", roomName, resp.Status())
	}
}
