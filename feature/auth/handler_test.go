package auth_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"dropbuddy/core/apperror"
	"dropbuddy/feature/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupAuthApp(t *testing.T, gormDB *gorm.DB) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: apperror.ErrorHandler(zap.NewNop()),
	})
	svc := auth.NewService(gormDB, testSecret, zap.NewNop())
	auth.NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleRegisterSuccess(t *testing.T) {
	gormDB, mock := newMockDB(t)
	app := setupAuthApp(t, gormDB)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows(userColumns()))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("POST", "/v1/auth/register", strings.NewReader(
		`{"username":"alice","email":"alice@example.com","password":"longenough"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 0, body["code"])

	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "password_hash", "hash must never leave the server")
}

func TestHandleRegisterInvalidBody(t *testing.T) {
	gormDB, _ := newMockDB(t)
	app := setupAuthApp(t, gormDB)

	req := httptest.NewRequest("POST", "/v1/auth/register", strings.NewReader("{not json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, apperror.CodeValidation, body["code"])
	assert.Nil(t, body["data"])
}

func TestHandleRegisterValidationError(t *testing.T) {
	gormDB, _ := newMockDB(t)
	app := setupAuthApp(t, gormDB)

	req := httptest.NewRequest("POST", "/v1/auth/register", strings.NewReader(
		`{"username":"","email":"alice@example.com","password":"longenough"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, apperror.CodeValidation, body["code"])
	assert.Contains(t, body["msg"], "username")
}
