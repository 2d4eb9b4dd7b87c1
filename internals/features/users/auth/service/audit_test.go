// file: internals/features/users/auth/service/audit_test.go
package service

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeOnWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const safariOnIPhone = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_6 like Mac OS X) AppleWebKit/605.1.15 " +
	"(KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"

func TestAcceptedLanguages(t *testing.T) {
	assert.Equal(t,
		[]string{"en-US", "en", "es"},
		acceptedLanguages("en-US,en;q=0.9,es;q=0.8"))
	assert.Equal(t, []string{"pt"}, acceptedLanguages("pt"))
	assert.Nil(t, acceptedLanguages(""))
	assert.Nil(t, acceptedLanguages("   "))
}

func TestBuildLoginAuditFromRequest(t *testing.T) {
	var got LoginAuditContext

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		got = BuildLoginAudit(c, 1920, 1080)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/login", nil)
	req.Header.Set(fiber.HeaderUserAgent, chromeOnWindows)
	req.Header.Set(fiber.HeaderAcceptLanguage, "en-US,en;q=0.9")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "Chrome", got.Browser)
	assert.Equal(t, "Windows", got.OS)
	assert.Equal(t, "desktop", got.DeviceType)
	assert.Equal(t, []string{"en-US", "en"}, got.Languages)
	assert.Equal(t, 1920, got.ScreenWidth)
	assert.Equal(t, 1080, got.ScreenHeight)
	assert.NotEmpty(t, got.IP)
}

// The parsed device string lands in device_model; desktop UAs carry no
// device and leave it unset.
func TestBuildLoginAuditCapturesDevice(t *testing.T) {
	var got LoginAuditContext

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		got = BuildLoginAudit(c, 390, 844)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/login", nil)
	req.Header.Set(fiber.HeaderUserAgent, safariOnIPhone)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, got.DeviceModel)
	assert.Equal(t, "iPhone", *got.DeviceModel)
	assert.Equal(t, "mobile", got.DeviceType)

	req = httptest.NewRequest("POST", "/login", nil)
	req.Header.Set(fiber.HeaderUserAgent, chromeOnWindows)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, got.DeviceModel)
}
