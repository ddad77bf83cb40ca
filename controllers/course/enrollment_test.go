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

func TestEnrollAndStatus(t *testing.T) {
	_, token := createTestUser(t, "enroll@example.com", "USER")
	course, _ := createTestCourse(t, "Enrollment Basics", 2)
	url := fmt.Sprintf("/course/%d/enroll", course.ID)

	// Anonymous status is a soft not-enrolled, not an error
	resp := performRequest(t, "GET", fmt.Sprintf("/course/%d/enrollment", course.ID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := responseData(t, resp)
	assert.Equal(t, false, data["enrolled"])

	resp = performRequest(t, "POST", url, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = performRequest(t, "GET", fmt.Sprintf("/course/%d/enrollment", course.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = responseData(t, resp)
	assert.Equal(t, true, data["enrolled"])
	require.NotNil(t, data["enrollment"])
	enrollment := data["enrollment"].(map[string]interface{})
	assert.Nil(t, enrollment["completed_at"])

	// Second enroll hits the unique index, not a second row
	resp = performRequest(t, "POST", url, token, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("course_id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollRequiresAuth(t *testing.T) {
	course, _ := createTestCourse(t, "Locked Course", 1)

	resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestEnrollUnpublishedCourse(t *testing.T) {
	_, token := createTestUser(t, "draft@example.com", "USER")

	course := courseModels.Course{Title: "Draft Course", IsPublished: false}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUnenrollCascadesAndIsIdempotent(t *testing.T) {
	user, token := createTestUser(t, "unenroll@example.com", "USER")
	course, modules := createTestCourse(t, "Unenroll Course", 3)

	resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, m := range modules {
		resp = performRequest(t, "POST", fmt.Sprintf("/course/%d/module/%d/complete", course.ID, m.ID), token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp = performRequest(t, "DELETE", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = performRequest(t, "GET", fmt.Sprintf("/course/%d/enrollment", course.ID), token, nil)
	data := responseData(t, resp)
	assert.Equal(t, false, data["enrolled"])

	// Progress rows for the pair are gone with the enrollment
	var progressCount int64
	database.Database.Db.Model(&courseModels.ModuleProgress{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&progressCount)
	assert.Equal(t, int64(0), progressCount)

	// Double-unenroll is a no-op success
	resp = performRequest(t, "DELETE", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestReenrollAfterUnenroll(t *testing.T) {
	_, token := createTestUser(t, "reenroll@example.com", "USER")
	course, _ := createTestCourse(t, "Reenroll Course", 1)
	url := fmt.Sprintf("/course/%d/enroll", course.ID)

	resp := performRequest(t, "POST", url, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = performRequest(t, "DELETE", url, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = performRequest(t, "POST", url, token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetUserEnrollmentsList(t *testing.T) {
	_, token := createTestUser(t, "list@example.com", "USER")
	first, _ := createTestCourse(t, "List Course A", 1)
	second, _ := createTestCourse(t, "List Course B", 1)

	for _, course := range []uint{first.ID, second.ID} {
		resp := performRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", course), token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp := performRequest(t, "GET", "/user/enrollments", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := responseData(t, resp)
	enrollments := data["enrollments"].([]interface{})
	assert.Len(t, enrollments, 2)

	// Courses are preloaded onto each enrollment
	for _, e := range enrollments {
		entry := e.(map[string]interface{})
		course := entry["course"].(map[string]interface{})
		assert.NotEmpty(t, course["title"])
	}
}
