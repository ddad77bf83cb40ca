package controllers_test

import (
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"

	"folio/database"
	courseModels "folio/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getProgress(t *testing.T, courseID uint, token string) map[string]interface{} {
	t.Helper()

	resp := performRequest(t, "GET", fmt.Sprintf("/course/%d/progress", courseID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return responseData(t, resp)
}

func TestCourseCompletionScenario(t *testing.T) {
	user, token := createTestUser(t, "scenario@example.com", "USER")
	course, modules := createTestCourse(t, "Intro to X", 3)

	resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := getProgress(t, course.ID, token)
	assert.Equal(t, float64(0), data["percentage"])

	// Percentage climbs module by module and never decreases
	expected := []float64{33, 67, 100}
	for i, m := range modules {
		resp = performRequest(t, "POST", fmt.Sprintf("/course/%d/module/%d/complete", course.ID, m.ID), token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		data = getProgress(t, course.ID, token)
		assert.Equal(t, expected[i], data["percentage"])
	}

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	require.NotNil(t, enrollment.CompletedAt)

	// One completion, one certificate
	var certCount int64
	database.Database.Db.Model(&courseModels.Certificate{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&certCount)
	assert.Equal(t, int64(1), certCount)

	firstCompletedAt := *enrollment.CompletedAt

	// Re-completing a module must not move or re-fire the milestone
	resp = performRequest(t, "POST", fmt.Sprintf("/course/%d/module/%d/complete", course.ID, modules[0].ID), token, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	require.NoError(t, database.Database.Db.Where("id = ?", enrollment.ID).First(&enrollment).Error)
	require.NotNil(t, enrollment.CompletedAt)
	assert.Equal(t, firstCompletedAt.Unix(), enrollment.CompletedAt.Unix())

	database.Database.Db.Model(&courseModels.Certificate{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&certCount)
	assert.Equal(t, int64(1), certCount)
}

func TestCompleteModuleDuplicate(t *testing.T) {
	user, token := createTestUser(t, "dup@example.com", "USER")
	course, modules := createTestCourse(t, "Duplicate Course", 2)

	resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	url := fmt.Sprintf("/course/%d/module/%d/complete", course.ID, modules[0].ID)

	resp = performRequest(t, "POST", url, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = performRequest(t, "POST", url, token, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	result := decodeResponse(t, resp)
	assert.Equal(t, "Module already completed!", result["message"])

	var count int64
	database.Database.Db.Model(&courseModels.ModuleProgress{}).
		Where("user_id = ? AND module_id = ?", user.ID, modules[0].ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCompleteModuleConcurrentRace(t *testing.T) {
	user, token := createTestUser(t, "race@example.com", "USER")
	course, modules := createTestCourse(t, "Race Course", 2)

	resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	url := fmt.Sprintf("/course/%d/module/%d/complete", course.ID, modules[0].ID)

	// Two racing completion calls: the unique index is the backstop, so
	// exactly one row survives
	var wg sync.WaitGroup
	statuses := make([]int, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest("POST", url, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req, -1)
			if err != nil {
				return
			}
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	assert.Contains(t, statuses, fiber.StatusOK)

	var count int64
	database.Database.Db.Model(&courseModels.ModuleProgress{}).
		Where("user_id = ? AND module_id = ?", user.ID, modules[0].ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCompleteModuleRequiresEnrollment(t *testing.T) {
	_, token := createTestUser(t, "notenrolled@example.com", "USER")
	course, modules := createTestCourse(t, "Gated Course", 1)

	resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/module/%d/complete", course.ID, modules[0].ID), token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUncompleteIsIdempotentAndCompletionIsOneWay(t *testing.T) {
	user, token := createTestUser(t, "oneway@example.com", "USER")
	course, modules := createTestCourse(t, "One Way Course", 2)

	resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, m := range modules {
		resp = performRequest(t, "POST", fmt.Sprintf("/course/%d/module/%d/complete", course.ID, m.ID), token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	require.NotNil(t, enrollment.CompletedAt)

	// Unmarking a module drops the percentage but the course stays completed
	url := fmt.Sprintf("/course/%d/module/%d/complete", course.ID, modules[0].ID)
	resp = performRequest(t, "DELETE", url, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := getProgress(t, course.ID, token)
	assert.Equal(t, float64(50), data["percentage"])

	require.NoError(t, database.Database.Db.Where("id = ?", enrollment.ID).First(&enrollment).Error)
	assert.NotNil(t, enrollment.CompletedAt)

	// Deleting the already-absent row is still a success
	resp = performRequest(t, "DELETE", url, token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProgressWithNoModules(t *testing.T) {
	_, token := createTestUser(t, "empty@example.com", "USER")
	course, _ := createTestCourse(t, "Empty Course", 0)

	resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := getProgress(t, course.ID, token)
	assert.Equal(t, float64(0), data["percentage"])
	assert.Equal(t, float64(0), data["total_modules"])
}

func TestOrphanedProgressStillCounts(t *testing.T) {
	_, token := createTestUser(t, "orphan@example.com", "USER")
	course, modules := createTestCourse(t, "Orphan Course", 2)

	resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = performRequest(t, "POST", fmt.Sprintf("/course/%d/module/%d/complete", course.ID, modules[0].ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Catalog edit removes the completed module; the progress row survives
	require.NoError(t, database.Database.Db.Model(&courseModels.Module{}).
		Where("id = ?", modules[0].ID).
		Update("is_deleted", true).Error)

	data := getProgress(t, course.ID, token)
	assert.Equal(t, float64(1), data["total_modules"])
	assert.Equal(t, float64(1), data["completed_count"])
	assert.Equal(t, float64(100), data["percentage"])
	assert.Equal(t, float64(1), data["orphaned_count"])
	assert.Empty(t, data["completed_module_ids"])
}
