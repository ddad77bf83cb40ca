package utils

import (
	"log"
	"time"

	"folio/config"

	"github.com/go-resty/resty/v2"
)

// Webhook event names sent to the frontend sink
const (
	EventEnrolled        = "enrolled"
	EventUnenrolled      = "unenrolled"
	EventModuleCompleted = "module_completed"
	EventCourseCompleted = "course_completed"
)

// WebhookEvent is the payload POSTed to WEBHOOK_URL after a state change,
// so the presentation layer can re-render enrollment/progress state.
type WebhookEvent struct {
	Event     string `json:"event"`
	UserID    uint   `json:"user_id"`
	CourseID  uint   `json:"course_id"`
	ModuleID  uint   `json:"module_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// NotifyEvent delivers an event to the configured webhook URL, best effort.
// Failures are logged and never propagated to the request path.
func NotifyEvent(event string, userID, courseID, moduleID uint) {
	url := config.AppConfig.WebhookURL
	if url == "" {
		return
	}

	payload := WebhookEvent{
		Event:     event,
		UserID:    userID,
		CourseID:  courseID,
		ModuleID:  moduleID,
		Timestamp: time.Now().Unix(),
	}

	go func() {
		client := resty.New().SetTimeout(10 * time.Second)
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			Post(url)
		if err != nil {
			log.Printf("Webhook delivery failed for %s: %v", event, err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("Webhook %s returned status %d", event, resp.StatusCode())
		}
	}()
}
