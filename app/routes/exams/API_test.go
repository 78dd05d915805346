package exams

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/routes/auth"
	"github.com/ahmed1mohammd/Attendee-system/app/services"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func setupApp(t *testing.T) (*fiber.App, *store.Memory, string) {
	t.Helper()

	st := store.NewMemory()
	app := fiber.New()
	SetupExamRoutes(app, st, services.NewGrading(st))

	user := &models.User{Username: "admin", Name: "Admin", Role: models.RoleAdmin, Password: "irrelevant", IsActive: true}
	require.NoError(t, st.CreateUser(user))
	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)

	return app, st, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestUpdateExamChecksGroup(t *testing.T) {
	app, st, token := setupApp(t)

	group := &models.Group{Name: "Algebra", MeetingDays: []string{"monday"}, MeetingTime: "16:00", SessionPrice: 50}
	require.NoError(t, st.CreateGroup(group))

	resp := doJSON(t, app, "POST", "/api/exams", token, fiber.Map{
		"name": "Midterm", "group_id": group.ID, "date": "2026-03-15", "max_score": 100,
	})
	require.Equal(t, 201, resp.StatusCode)

	var exam models.Exam
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&exam))

	// repointing at a nonexistent group is rejected
	resp = doJSON(t, app, "PUT", "/api/exams/"+exam.ID, token, fiber.Map{
		"name": "Midterm", "group_id": "does-not-exist", "date": "2026-03-15", "max_score": 100,
	})
	assert.Equal(t, 404, resp.StatusCode)

	got, err := st.GetExam(exam.ID)
	require.NoError(t, err)
	assert.Equal(t, group.ID, got.GroupID)

	resp = doJSON(t, app, "PUT", "/api/exams/"+exam.ID, token, fiber.Map{
		"name": "Final", "group_id": group.ID, "date": "2026-04-15", "max_score": 80,
	})
	assert.Equal(t, 200, resp.StatusCode)
}

func TestCreateExamUnknownGroup(t *testing.T) {
	app, _, token := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/exams", token, fiber.Map{
		"name": "Midterm", "group_id": "does-not-exist", "date": "2026-03-15", "max_score": 100,
	})
	assert.Equal(t, 404, resp.StatusCode)
}
