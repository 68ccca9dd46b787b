package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminNotFound      = errors.New("admin user not found")
)

// AdminUser là operator duy nhất của backoffice
type AdminUser struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         *string   `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ========================================
// AUTH DTOs
// ========================================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	ExpiresAt   time.Time  `json:"expires_at"`
	Admin       *AdminUser `json:"admin"`
}

// SeedRequest - input của cmd/seed-admin
type SeedRequest struct {
	Email    string
	Password string
	Name     string
}

func (r SeedRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("ADMIN_EMAIL is required"),
			is.Email.Error("ADMIN_EMAIL must be a valid email address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("ADMIN_PASSWORD is required"),
			validation.Length(8, 72).Error("ADMIN_PASSWORD must be 8-72 characters"),
		),
		validation.Field(&r.Name, validation.Length(0, 100)),
	)
}
