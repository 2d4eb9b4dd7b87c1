// file: internals/features/logs/controller/log_controller_test.go
package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The empty-body and bad-id paths answer before touching the DB, so the
// controller can run with a nil handle here.
func newLogApp() *fiber.App {
	app := fiber.New()
	ctl := NewLogController(nil)
	app.Post("/log", ctl.AddLog)
	app.Put("/log/:activity_id?", ctl.PutLog)
	app.Delete("/log/:activity_id?", ctl.DeleteLog)
	return app
}

func TestAddLogEmptyBodyIsNoOp(t *testing.T) {
	app := newLogApp()

	for _, body := range []string{"", "{}", "  {}  "} {
		req := httptest.NewRequest("POST", "/log", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "body %q", body)
	}
}

func TestAddLogUnknownKindIsRejected(t *testing.T) {
	app := newLogApp()

	req := httptest.NewRequest("POST", "/log", strings.NewReader(`{"activity_kind":""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPutLogWithoutIDFails(t *testing.T) {
	app := newLogApp()

	req := httptest.NewRequest("PUT", "/log/", strings.NewReader(`{"notes":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	payload, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(payload), "No log id defined")
}

func TestDeleteLogWithBadIDFails(t *testing.T) {
	app := newLogApp()

	for _, id := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest("DELETE", "/log/"+id, nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "id %q", id)
	}
}
