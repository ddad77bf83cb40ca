package utils

import (
	"log"
	"time"

	"folio/database"
	courseModels "folio/models/course"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeDigestScheduler sets up the weekly course-activity digest
func InitializeDigestScheduler() {
	log.Println("[DIGEST-SCHEDULER] Initializing digest scheduler...")

	c := cron.New()

	// Run Mondays at 8 AM
	c.AddFunc("0 8 * * 1", func() {
		log.Println("[DIGEST-SCHEDULER] Running weekly digest...")
		SendWeeklyActivityDigest()
	})

	c.Start()
	log.Println("[DIGEST-SCHEDULER] Digest scheduler started - runs Mondays at 8 AM")
}

// SendWeeklyActivityDigest counts the past week's enrollments and completions
// and mails them to the owner
func SendWeeklyActivityDigest() {
	db := database.Database.Db

	weekStart := now.With(time.Now().AddDate(0, 0, -7)).BeginningOfWeek()

	var enrollments int64
	if err := db.Model(&courseModels.Enrollment{}).
		Where("enrolled_at >= ?", weekStart).
		Count(&enrollments).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error counting enrollments: %v", err)
		return
	}

	var completions int64
	if err := db.Model(&courseModels.Enrollment{}).
		Where("completed_at IS NOT NULL AND completed_at >= ?", weekStart).
		Count(&completions).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error counting completions: %v", err)
		return
	}

	log.Printf("[DIGEST-SCHEDULER] Week since %s: %d enrollments, %d completions",
		weekStart.Format("2006-01-02"), enrollments, completions)

	SendWeeklyDigest(enrollments, completions)
}
