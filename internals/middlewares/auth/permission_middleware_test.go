package auth

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litefarm_backend/internals/configs"
	"litefarm_backend/internals/constants"
)

func newScopedApp(roleID any, permission string) *fiber.App {
	app := fiber.New()
	app.Get("/probe",
		func(c *fiber.Ctx) error {
			if roleID != nil {
				c.Locals(LocalRoleID, roleID)
			}
			return c.Next()
		},
		CheckScope(permission),
		func(c *fiber.Ctx) error { return c.SendString("through") },
	)
	return app
}

func TestCheckScopeAllowsGrantedRole(t *testing.T) {
	app := newScopedApp(constants.RoleWorker, constants.PermAddLogs)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCheckScopeRejectsWithExactMessage(t *testing.T) {
	app := newScopedApp(constants.RoleWorker, constants.PermDeleteExpenses)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t,
		"User does not have the following permission(s): delete:expenses",
		string(body))
}

func TestCheckScopeRejectsMissingRole(t *testing.T) {
	app := newScopedApp(nil, constants.PermGetLogs)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddlewareRejectsBadHeaders(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	app := fiber.New()
	app.Get("/secure", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"empty token":    "Bearer ",
		"garbage token":  "Bearer not.a.jwt",
	}
	for name, header := range cases {
		req := httptest.NewRequest("GET", "/secure", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err, name)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, name)
	}
}
