package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"dropbuddy/core/apperror"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tokenTTL is how long a registration token stays valid.
const tokenTTL = 24 * time.Hour

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// Service implements user registration on top of the database pool.
type Service struct {
	db        *gorm.DB
	jwtSecret string
	logger    *zap.Logger
}

// NewService creates a new auth service.
func NewService(db *gorm.DB, jwtSecret string, logger *zap.Logger) *Service {
	return &Service{
		db:        db,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// RegisterUser validates the request, persists the user with a bcrypt
// password hash and returns the public record plus a signed token.
func (s *Service) RegisterUser(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if err := validateRegister(&req); err != nil {
		return nil, err
	}

	var existing User
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, apperror.Validation("email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Database(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, apperror.Database(err)
	}

	token, err := s.signToken(&user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID))

	return &RegisterResult{User: user, Token: token}, nil
}

// signToken issues an HS256 token for the new user.
func (s *Service) signToken(user *User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// validateRegister normalizes and checks the request fields.
func validateRegister(req *RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Username == "" {
		return apperror.Validation("username must not be empty")
	}
	if req.Email == "" {
		return apperror.Validation("email must not be empty")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return apperror.Validation("email is not a valid address")
	}
	if len(req.Password) < minPasswordLength {
		return apperror.Validation("password must be at least 8 characters")
	}
	return nil
}
