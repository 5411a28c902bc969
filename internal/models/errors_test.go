package models

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respondWith(t *testing.T, err error, status int) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return RespondWithError(c, status, err)
	})

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, testErr)
	defer func() { _ = resp.Body.Close() }()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespondWithErrorInternalStaysGeneric(t *testing.T) {
	driverErr := errors.New(`pq: connection refused on "entries" insert`)
	status, body := respondWith(t, NewInternalError(driverErr), fiber.StatusInternalServerError)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, "INTERNAL_ERROR", body["code"])

	// The wrapped cause belongs in the logs, never in the response.
	_, leaked := body["details"]
	assert.False(t, leaked, "internal error responses must not carry details")
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "connection refused"),
		"driver error text must not reach the client")
}

func TestRespondWithErrorValidationCarriesFields(t *testing.T) {
	appErr := NewFieldValidationError([]FieldError{
		{Field: "content", Code: "content_required", Message: "Content is required."},
	})
	status, body := respondWith(t, appErr, fiber.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	fields, ok := body["errors"].([]any)
	require.True(t, ok, "validation responses keep their field errors")
	require.Len(t, fields, 1)
	first := fields[0].(map[string]any)
	assert.Equal(t, "content_required", first["code"])
}
