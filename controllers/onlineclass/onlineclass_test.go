package onlineClassController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *classFixture) instructorDo(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	req := httptest.NewRequest(method, path, nil)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
		req = httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCrossInstructorClassMutationsForbidden(t *testing.T) {
	f := setupClassFixture(t, 50)

	intruder := models.User{Name: "Intruder", Email: "intruder@example.com", Password: "x", Role: models.RoleInstructor}
	require.NoError(t, f.db.Create(&intruder).Error)
	token, err := middleware.GenerateJWT(intruder.ID, intruder.Name, intruder.Role)
	require.NoError(t, err)

	base := fmt.Sprintf("/api/online-classes/%d", f.class.ID)

	resp := f.instructorDo(t, http.MethodPut, base, token, fiber.Map{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.instructorDo(t, http.MethodPatch, base+"/status", token, fiber.Map{"status": models.ClassCancelled})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.instructorDo(t, http.MethodDelete, base, token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var reloaded models.OnlineClass
	require.NoError(t, f.db.First(&reloaded, f.class.ID).Error)
	assert.Equal(t, "Live Q&A", reloaded.Title)
	assert.Equal(t, models.ClassScheduled, reloaded.Status)
	assert.False(t, reloaded.IsDeleted)
}

func TestMutatingMissingClassIsNotFound(t *testing.T) {
	f := setupClassFixture(t, 50)

	host := models.User{Name: "Host", Email: "host@example.com", Password: "x", Role: models.RoleInstructor}
	require.NoError(t, f.db.Create(&host).Error)
	token, err := middleware.GenerateJWT(host.ID, host.Name, host.Role)
	require.NoError(t, err)

	resp := f.instructorDo(t, http.MethodDelete, "/api/online-classes/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
