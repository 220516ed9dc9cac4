package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"craftopia/config"
	"craftopia/database"
	"craftopia/middleware"
	"craftopia/models"
	"craftopia/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRoleApp(t *testing.T) (*fiber.App, repository.UserRepository) {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	users := repository.NewUserRepository(db)

	app := fiber.New()
	app.Get("/admin-only", middleware.JWTMiddleware, middleware.RequireRole(users, "admin"), func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
	})
	return app, users
}

func roleRequest(t *testing.T, email string) *http.Request {
	t.Helper()
	token, err := middleware.GenerateJWT(email, "Test")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	app, users := setupRoleApp(t)
	require.NoError(t, users.Create(&models.User{Name: "Admin", Email: "admin@example.com", Role: "admin"}))

	resp, err := app.Test(roleRequest(t, "admin@example.com"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	app, users := setupRoleApp(t)
	require.NoError(t, users.Create(&models.User{Name: "Student", Email: "student@example.com", Role: "student"}))

	resp, err := app.Test(roleRequest(t, "student@example.com"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleForbidsUnknownUsers(t *testing.T) {
	app, _ := setupRoleApp(t)

	resp, err := app.Test(roleRequest(t, "ghost@example.com"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
