package auth_test

import (
	"context"
	"errors"
	"testing"

	"dropbuddy/core/apperror"
	"dropbuddy/feature/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func userColumns() []string {
	return []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}
}

func TestRegisterUserSuccess(t *testing.T) {
	gormDB, mock := newMockDB(t)
	svc := auth.NewService(gormDB, testSecret, zap.NewNop())

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("alice@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userColumns()))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result, err := svc.RegisterUser(context.Background(), auth.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(result.User.PasswordHash), []byte("correct horse battery")))

	token, err := jwt.Parse(result.Token, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "alice", claims["username"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterUserNormalizesEmail(t *testing.T) {
	gormDB, mock := newMockDB(t)
	svc := auth.NewService(gormDB, testSecret, zap.NewNop())

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("bob@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userColumns()))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result, err := svc.RegisterUser(context.Background(), auth.RegisterRequest{
		Username: "bob",
		Email:    "  Bob@Example.COM ",
		Password: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", result.User.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	gormDB, mock := newMockDB(t)
	svc := auth.NewService(gormDB, testSecret, zap.NewNop())

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("taken@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(7, "someone", "taken@example.com", "hash", nil, nil))

	_, err := svc.RegisterUser(context.Background(), auth.RegisterRequest{
		Username: "newcomer",
		Email:    "taken@example.com",
		Password: "longenough",
	})
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "already registered")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterUserDatabaseError(t *testing.T) {
	gormDB, mock := newMockDB(t)
	svc := auth.NewService(gormDB, testSecret, zap.NewNop())

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnError(errors.New("connection reset"))

	_, err := svc.RegisterUser(context.Background(), auth.RegisterRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "longenough",
	})
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeDatabase, appErr.Code)
}

func TestRegisterUserValidation(t *testing.T) {
	gormDB, _ := newMockDB(t)
	svc := auth.NewService(gormDB, testSecret, zap.NewNop())

	tests := []struct {
		name string
		req  auth.RegisterRequest
		msg  string
	}{
		{
			name: "empty username",
			req:  auth.RegisterRequest{Email: "a@b.com", Password: "longenough"},
			msg:  "username",
		},
		{
			name: "whitespace username",
			req:  auth.RegisterRequest{Username: "   ", Email: "a@b.com", Password: "longenough"},
			msg:  "username",
		},
		{
			name: "empty email",
			req:  auth.RegisterRequest{Username: "dave", Password: "longenough"},
			msg:  "email",
		},
		{
			name: "malformed email",
			req:  auth.RegisterRequest{Username: "dave", Email: "not-an-email", Password: "longenough"},
			msg:  "email",
		},
		{
			name: "short password",
			req:  auth.RegisterRequest{Username: "dave", Email: "dave@example.com", Password: "short"},
			msg:  "password",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.req)
			require.Error(t, err)

			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Contains(t, appErr.Message, tt.msg)
		})
	}
}
