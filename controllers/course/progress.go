package controllers

import (
	"errors"
	"log"
	"math"
	"time"

	"folio/database"
	"folio/middleware"
	"folio/models"
	courseModels "folio/models/course"
	"folio/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CompleteModule records a module completion for the caller. The row is
// inserted first and a duplicate-key error means the module was already
// completed; there is no check-then-insert window for two clicks to race
// through. A successful insert runs the course-completion check.
func CompleteModule(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	progress := courseModels.ModuleProgress{
		UserID:   userID,
		ModuleID: uint(moduleID),
		CourseID: uint(courseID),
	}

	if err := database.Database.Db.Create(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Module already completed!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark module as completed!", nil)
	}

	utils.NotifyEvent(utils.EventModuleCompleted, userID, uint(courseID), uint(moduleID))

	evaluateCourseCompletion(&user, &course, &enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module marked as completed successfully!", progress)
}

// UncompleteModule removes a module completion. Deleting an absent row is a
// no-op success. An already-completed course stays completed; finishing a
// course is a one-way milestone.
func UncompleteModule(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	moduleID := c.Locals("moduleID").(int)

	if err := database.Database.Db.Where("user_id = ? AND module_id = ?", userID, moduleID).Delete(&courseModels.ModuleProgress{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unmark module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module unmarked successfully!", nil)
}

// GetUserProgress reports completion state for a course. The percentage uses
// the raw progress-row count, so rows orphaned by catalog edits still count;
// they are surfaced separately as orphaned_count.
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var progress []courseModels.ModuleProgress
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).Find(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	// Module count feeds the percentage display only; on failure it stays 0
	// and the percentage degrades to 0 rather than failing the request.
	var totalModules int64
	if err := database.Database.Db.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&totalModules).Error; err != nil {
		log.Printf("Error counting modules for course %d: %v", courseID, err)
		totalModules = 0
	}

	liveModuleIDs := map[uint]bool{}
	var modules []courseModels.Module
	database.Database.Db.Select("id").Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&modules)
	for _, m := range modules {
		liveModuleIDs[m.ID] = true
	}

	completedIDs := make([]uint, 0, len(progress))
	orphaned := 0
	for _, p := range progress {
		if liveModuleIDs[p.ModuleID] {
			completedIDs = append(completedIDs, p.ModuleID)
		} else {
			orphaned++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":           enrollment,
		"total_modules":        totalModules,
		"completed_count":      len(progress),
		"percentage":           progressPercentage(len(progress), totalModules),
		"completed_module_ids": completedIDs,
		"orphaned_count":       orphaned,
	})
}

// progressPercentage computes round(100 * completed / total), 0 when the
// course has no modules
func progressPercentage(completed int, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// evaluateCourseCompletion checks whether the user has now completed every
// live module of the course and, if so, sets the enrollment's completed_at.
// The guard on completed_at IS NULL makes the milestone fire at most once,
// even when two completion calls race.
func evaluateCourseCompletion(user *models.User, course *courseModels.Course, enrollment *courseModels.Enrollment) {
	db := database.Database.Db

	var totalModules int64
	if err := db.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Count(&totalModules).Error; err != nil {
		log.Printf("Error counting modules for course %d: %v", course.ID, err)
		return
	}

	var completedCount int64
	if err := db.Model(&courseModels.ModuleProgress{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&completedCount).Error; err != nil {
		log.Printf("Error counting progress for user %d course %d: %v", user.ID, course.ID, err)
		return
	}

	if totalModules == 0 || completedCount < totalModules {
		return
	}

	completedAt := time.Now()
	result := db.Model(&courseModels.Enrollment{}).
		Where("id = ? AND completed_at IS NULL", enrollment.ID).
		Update("completed_at", completedAt)
	if result.Error != nil {
		log.Printf("Error marking enrollment %d completed: %v", enrollment.ID, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		// Already completed earlier, or a racing call won
		return
	}

	enrollment.CompletedAt = &completedAt

	certificate, err := issueCertificate(user.ID, course.ID, enrollment.ID)
	if err != nil {
		log.Printf("Error issuing certificate for enrollment %d: %v", enrollment.ID, err)
	}

	certificateNumber := ""
	if certificate != nil {
		certificateNumber = certificate.CertificateNumber
	}
	utils.SendCourseCompletionEmail(user.Email, user.Name, course.Title, certificateNumber)
	utils.NotifyEvent(utils.EventCourseCompleted, user.ID, course.ID, 0)
}
