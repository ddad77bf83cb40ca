package controllers

import (
	"errors"

	"folio/database"
	"folio/middleware"
	courseModels "folio/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllCourses lists published courses in display order
func GetAllCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("is_deleted = ? AND is_published = ?", false, true).
		Order("order_index asc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseDetails gets a course with its ordered modules. Works for anonymous
// callers; a signed-in caller also gets enrollment state and per-module
// completion checkmarks.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules)

	// Anonymous caller: catalog view only
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
			"course":      course,
			"modules":     modules,
			"is_enrolled": false,
		})
	}

	var enrollment courseModels.Enrollment
	err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	isEnrolled := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment!", nil)
	}

	// Per-module checkmarks are reconciled against the live module list;
	// orphaned progress rows only show up in the percentage, not here.
	completed := map[uint]bool{}
	if isEnrolled {
		var progress []courseModels.ModuleProgress
		database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).Find(&progress)
		for _, p := range progress {
			completed[p.ModuleID] = true
		}
	}

	type ModuleWithStatus struct {
		courseModels.Module
		IsCompleted bool `json:"is_completed"`
	}
	result := make([]ModuleWithStatus, len(modules))
	for i, m := range modules {
		result[i] = ModuleWithStatus{Module: m, IsCompleted: completed[m.ID]}
	}

	payload := fiber.Map{
		"course":      course,
		"modules":     result,
		"is_enrolled": isEnrolled,
	}
	if isEnrolled {
		payload["enrollment"] = enrollment
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", payload)
}
