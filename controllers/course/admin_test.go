package controllers_test

import (
	"fmt"
	"testing"

	"folio/database"
	courseModels "folio/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCreateCourseAndModules(t *testing.T) {
	_, adminToken := createTestUser(t, "admin-create@example.com", "ADMIN")

	resp := performRequest(t, "POST", "/admin/course/", adminToken, map[string]interface{}{
		"title":    "Built via API",
		"level":    "Intermediate",
		"duration": "4 weeks",
		"price":    49.0,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	result := decodeResponse(t, resp)
	courseData := result["data"].(map[string]interface{})
	courseID := uint(courseData["ID"].(float64))

	// Modules pick up sequential order indexes
	for _, title := range []string{"First", "Second"} {
		resp = performRequest(t, "POST", fmt.Sprintf("/admin/course/%d/module", courseID), adminToken, map[string]interface{}{
			"title": title,
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	var modules []courseModels.Module
	require.NoError(t, database.Database.Db.Where("course_id = ?", courseID).Order("order_index asc").Find(&modules).Error)
	require.Len(t, modules, 2)
	assert.Equal(t, 1, modules[0].OrderIndex)
	assert.Equal(t, 2, modules[1].OrderIndex)
}

func TestAdminCreateCourseValidation(t *testing.T) {
	_, adminToken := createTestUser(t, "admin-validate@example.com", "ADMIN")

	resp := performRequest(t, "POST", "/admin/course/", adminToken, map[string]interface{}{
		"title": "Bad Level",
		"level": "Expert",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = performRequest(t, "POST", "/admin/course/", adminToken, map[string]interface{}{
		"level": "Beginner",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	_, userToken := createTestUser(t, "plain-user@example.com", "USER")

	resp := performRequest(t, "POST", "/admin/course/", userToken, map[string]interface{}{
		"title": "Should Fail",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = performRequest(t, "GET", "/admin/course/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminReorderModules(t *testing.T) {
	_, adminToken := createTestUser(t, "admin-reorder@example.com", "ADMIN")
	course, modules := createTestCourse(t, "Reorder Course", 3)

	reordered := []uint{modules[2].ID, modules[0].ID, modules[1].ID}
	resp := performRequest(t, "PUT", fmt.Sprintf("/admin/course/%d/modules/reorder", course.ID), adminToken, map[string]interface{}{
		"module_ids": reordered,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored []courseModels.Module
	require.NoError(t, database.Database.Db.Where("course_id = ?", course.ID).Order("order_index asc").Find(&stored).Error)
	require.Len(t, stored, 3)
	for i, id := range reordered {
		assert.Equal(t, id, stored[i].ID)
		assert.Equal(t, i+1, stored[i].OrderIndex)
	}
}

func TestAdminReorderRejectsMismatchedList(t *testing.T) {
	_, adminToken := createTestUser(t, "admin-mismatch@example.com", "ADMIN")
	course, modules := createTestCourse(t, "Mismatch Course", 2)

	// Short list
	resp := performRequest(t, "PUT", fmt.Sprintf("/admin/course/%d/modules/reorder", course.ID), adminToken, map[string]interface{}{
		"module_ids": []uint{modules[0].ID},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Duplicate id
	resp = performRequest(t, "PUT", fmt.Sprintf("/admin/course/%d/modules/reorder", course.ID), adminToken, map[string]interface{}{
		"module_ids": []uint{modules[0].ID, modules[0].ID},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Module from another course
	_, otherModules := createTestCourse(t, "Foreign Course", 1)
	resp = performRequest(t, "PUT", fmt.Sprintf("/admin/course/%d/modules/reorder", course.ID), adminToken, map[string]interface{}{
		"module_ids": []uint{modules[0].ID, otherModules[0].ID},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminDeleteModuleOrphansProgress(t *testing.T) {
	user, token := createTestUser(t, "admin-orphan@example.com", "USER")
	_, adminToken := createTestUser(t, "admin-orphan-admin@example.com", "ADMIN")
	course, modules := createTestCourse(t, "Module Delete Course", 2)

	resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = performRequest(t, "POST", fmt.Sprintf("/course/%d/module/%d/complete", course.ID, modules[0].ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = performRequest(t, "DELETE", fmt.Sprintf("/admin/course/%d/module/%d", course.ID, modules[0].ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The progress row outlives its module
	var count int64
	database.Database.Db.Model(&courseModels.ModuleProgress{}).
		Where("user_id = ? AND module_id = ?", user.ID, modules[0].ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}
