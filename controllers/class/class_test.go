package classController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"craftopia/config"
	classController "craftopia/controllers/class"
	"craftopia/database"
	"craftopia/middleware"
	"craftopia/models"
	"craftopia/repository"
	"craftopia/routers/classRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, repository.ClassRepository, repository.UserRepository) {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	users := repository.NewUserRepository(db)
	classes := repository.NewClassRepository(db)
	require.NoError(t, users.Create(&models.User{Name: "Admin", Email: "admin@example.com", Role: "admin"}))
	require.NoError(t, users.Create(&models.User{Name: "Ina", Email: "ina@example.com", Role: "instructor"}))
	require.NoError(t, users.Create(&models.User{Name: "Sam", Email: "sam@example.com", Role: "student"}))

	app := fiber.New()
	classRoutes.SetupClassRoutes(app, classController.NewClassController(classes), users)
	return app, classes, users
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, email string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if email != "" {
		token, err := middleware.GenerateJWT(email, "Test")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp, env
}

func TestCreateClassRequiresInstructorRole(t *testing.T) {
	app, classes, _ := setupApp(t)

	body := map[string]interface{}{
		"name":            "Pottery Basics",
		"instructorEmail": "ina@example.com",
		"price":           25.0,
		"availableSeats":  10,
		"status":          "pending",
	}

	resp, _ := doRequest(t, app, http.MethodPost, "/class", body, "sam@example.com")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	all, err := classes.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	resp, _ = doRequest(t, app, http.MethodPost, "/class", body, "ina@example.com")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	all, err = classes.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	// Status is stored exactly as the client sent it.
	assert.Equal(t, "pending", all[0].Status)
}

func TestSparseUpdateTouchesOnlySuppliedFields(t *testing.T) {
	app, classes, _ := setupApp(t)

	class := models.Class{
		Name:            "Pottery Basics",
		InstructorEmail: "ina@example.com",
		Status:          "approved",
		Feedback:        "solid plan",
		Clicked:         true,
		AvailableSeats:  10,
	}
	require.NoError(t, classes.Create(&class))

	resp, _ := doRequest(t, app, http.MethodPatch, fmt.Sprintf("/class/%d", class.ID), map[string]interface{}{
		"feedback": "needs a materials list",
	}, "admin@example.com")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	reloaded, err := classes.FindByID(class.ID)
	require.NoError(t, err)
	assert.Equal(t, "needs a materials list", reloaded.Feedback)
	assert.Equal(t, "approved", reloaded.Status)
	assert.True(t, reloaded.Clicked)

	resp, _ = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/class/%d", class.ID), map[string]interface{}{
		"status": "denied",
	}, "admin@example.com")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	reloaded, err = classes.FindByID(class.ID)
	require.NoError(t, err)
	assert.Equal(t, "denied", reloaded.Status)
	assert.Equal(t, "needs a materials list", reloaded.Feedback)
}

func TestUpdateClassRejectsEmptyPatch(t *testing.T) {
	app, classes, _ := setupApp(t)

	class := models.Class{Name: "Pottery Basics", InstructorEmail: "ina@example.com", Status: "pending"}
	require.NoError(t, classes.Create(&class))

	resp, _ := doRequest(t, app, http.MethodPatch, fmt.Sprintf("/class/%d", class.ID), map[string]interface{}{}, "admin@example.com")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListAllRequiresAdmin(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodGet, "/class", nil, "ina@example.com")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodGet, "/class", nil, "admin@example.com")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListApprovedIsPublicAndFiltered(t *testing.T) {
	app, classes, _ := setupApp(t)

	require.NoError(t, classes.Create(&models.Class{Name: "Approved", InstructorEmail: "ina@example.com", Status: "approved"}))
	require.NoError(t, classes.Create(&models.Class{Name: "Pending", InstructorEmail: "ina@example.com", Status: "pending"}))
	require.NoError(t, classes.Create(&models.Class{Name: "Denied", InstructorEmail: "ina@example.com", Status: "denied"}))

	resp, env := doRequest(t, app, http.MethodGet, "/classes", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []models.Class
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Approved", listed[0].Name)
}

func TestPopularListingCapsAtSixApprovedByEnrollment(t *testing.T) {
	app, classes, _ := setupApp(t)

	for i := 0; i < 8; i++ {
		require.NoError(t, classes.Create(&models.Class{
			Name:            fmt.Sprintf("Class %d", i),
			InstructorEmail: "ina@example.com",
			Status:          "approved",
			TotalEnrolled:   i * 3,
		}))
	}
	// High enrollment but not approved: must not appear.
	require.NoError(t, classes.Create(&models.Class{
		Name:            "Hidden",
		InstructorEmail: "ina@example.com",
		Status:          "pending",
		TotalEnrolled:   100,
	}))

	resp, env := doRequest(t, app, http.MethodGet, "/classessorted", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []models.Class
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 6)
	for i, class := range listed {
		assert.Equal(t, "approved", class.Status)
		if i > 0 {
			assert.GreaterOrEqual(t, listed[i-1].TotalEnrolled, class.TotalEnrolled)
		}
	}
	assert.Equal(t, 21, listed[0].TotalEnrolled)
}

func TestListByInstructorRequiresInstructor(t *testing.T) {
	app, classes, _ := setupApp(t)

	require.NoError(t, classes.Create(&models.Class{Name: "Mine", InstructorEmail: "ina@example.com", Status: "pending"}))
	require.NoError(t, classes.Create(&models.Class{Name: "Other", InstructorEmail: "other@example.com", Status: "pending"}))

	resp, _ := doRequest(t, app, http.MethodGet, "/class/instructor/ina@example.com", nil, "sam@example.com")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, env := doRequest(t, app, http.MethodGet, "/class/instructor/ina@example.com", nil, "ina@example.com")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []models.Class
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Mine", listed[0].Name)
}
