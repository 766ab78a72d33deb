package response_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"dropbuddy/core/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	resp := response.Success(map[string]string{"status": "healthy"})

	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "Success", resp.Msg)
	assert.Equal(t, map[string]string{"status": "healthy"}, resp.Data)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err, "timestamp must be RFC 3339")
}

func TestError(t *testing.T) {
	resp := response.Error(11000, "validation failed")

	assert.Equal(t, 11000, resp.Code)
	assert.Equal(t, "validation failed", resp.Msg)
	assert.Nil(t, resp.Data, "error responses never carry data")
}

func TestFail(t *testing.T) {
	resp := response.Fail("something went wrong")
	assert.Equal(t, 1, resp.Code)
	assert.Nil(t, resp.Data)
}

func TestErrorSerializesNullData(t *testing.T) {
	raw, err := json.Marshal(response.Error(5, "nope"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":null`)
}

func TestJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return response.JSON(c, fiber.Map{"message": "Hello, World!"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 0, body["code"])
	assert.Equal(t, map[string]any{"message": "Hello, World!"}, body["data"])
	assert.NotEmpty(t, body["timestamp"])
}
