package auth

import "time"

// User is the persisted account record.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName sets the table name used by GORM.
func (User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResult is the payload returned on successful registration.
type RegisterResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
