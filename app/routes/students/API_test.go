package students

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
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

func setupApp(t *testing.T) (*fiber.App, *store.Memory, string) {
	t.Helper()

	st := store.NewMemory()
	app := fiber.New()
	SetupStudentRoutes(app, st)

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

func TestCreateStudentIssuesQRToken(t *testing.T) {
	app, st, token := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/students", token, fiber.Map{
		"name":  "Amina",
		"phone": "0700000001",
	})
	require.Equal(t, 201, resp.StatusCode)

	var created models.Student
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.QRToken)
	assert.LessOrEqual(t, len(created.QRToken), 20, "must fit the qr_token VARCHAR(20) column")

	stored, err := st.GetStudentByQRToken(created.QRToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
}

func TestCreateStudentUnknownGroup(t *testing.T) {
	app, _, token := setupApp(t)

	groupID := "does-not-exist"
	resp := doJSON(t, app, "POST", "/api/students", token, fiber.Map{
		"name":     "Amina",
		"phone":    "0700000001",
		"group_id": groupID,
	})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCreateStudentDuplicatePhone(t *testing.T) {
	app, _, token := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/students", token, fiber.Map{"name": "Amina", "phone": "0700000001"})
	require.Equal(t, 201, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/students", token, fiber.Map{"name": "Other", "phone": "0700000001"})
	assert.Equal(t, 409, resp.StatusCode)
}
